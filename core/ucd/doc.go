/*
Package ucd loads the Unicode character data this tool needs for
script-aware font selection: the mapping from code points to script names,
as published in the UCD file Scripts.txt.

Scripts are iterated in the order they first appear in the data file, and
identification returns the first script whose ranges contain a code point.
Keeping that order stable is part of the package contract, since font
selection downstream depends on it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 the glyfi authors

*/
package ucd
