/*
Package tag packs four-byte OpenType tags into 32-bit identifiers.

OpenType identifies tables, scripts, language systems and features by tags:
arrays of four uint8s, conventionally printable ASCII. A Tag stores the first byte
in the most significant position, so the identifier compares, hashes and
switches like any integer.

	latn := tag.Make('l', 'a', 't', 'n')
	arab := tag.MustParse("arab")
	a, b, c, d := arab.Bytes()

Packing never fails. Make masks every argument to its low 8 bits, which lets
callers hand in signed bytes as well. Parse is the validating entry point for text
coming from users.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package tag
