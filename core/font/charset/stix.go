package charset

import "github.com/sungodmoth/glyfi/core/ucd"

// builtinCoverage carries literal coverage tables for fonts the system font
// query cannot be trusted about. STIX Two Text comes with TeX Live rather
// than the OS, so fontconfig may not see it even though the typesetter can
// use it just fine.
var builtinCoverage = map[string]ucd.RuneRanges{
	"STIXTwoText": stixTwoText,
}

var stixTwoText = ucd.RuneRanges{
	{Lo: 32, Hi: 126}, {Lo: 160, Hi: 384}, {Lo: 392, Hi: 392}, {Lo: 400, Hi: 400}, {Lo: 402, Hi: 402}, {Lo: 405, Hi: 405},
	{Lo: 409, Hi: 411}, {Lo: 414, Hi: 414}, {Lo: 416, Hi: 417}, {Lo: 421, Hi: 421}, {Lo: 426, Hi: 427}, {Lo: 429, Hi: 429},
	{Lo: 431, Hi: 432}, {Lo: 437, Hi: 437}, {Lo: 442, Hi: 443}, {Lo: 446, Hi: 446}, {Lo: 448, Hi: 451}, {Lo: 478, Hi: 479},
	{Lo: 496, Hi: 496}, {Lo: 506, Hi: 511}, {Lo: 536, Hi: 539}, {Lo: 545, Hi: 545}, {Lo: 552, Hi: 553}, {Lo: 564, Hi: 567},
	{Lo: 592, Hi: 745}, {Lo: 748, Hi: 749}, {Lo: 759, Hi: 759}, {Lo: 768, Hi: 831}, {Lo: 838, Hi: 839}, {Lo: 844, Hi: 844},
	{Lo: 857, Hi: 857}, {Lo: 860, Hi: 860}, {Lo: 864, Hi: 866}, {Lo: 894, Hi: 894}, {Lo: 900, Hi: 906}, {Lo: 908, Hi: 908},
	{Lo: 910, Hi: 929}, {Lo: 931, Hi: 974}, {Lo: 976, Hi: 978}, {Lo: 981, Hi: 982}, {Lo: 984, Hi: 993}, {Lo: 1008, Hi: 1009},
	{Lo: 1012, Hi: 1014}, {Lo: 1024, Hi: 1119}, {Lo: 1122, Hi: 1123}, {Lo: 1130, Hi: 1131}, {Lo: 1138, Hi: 1141}, {Lo: 1168, Hi: 1169},
	{Lo: 7424, Hi: 7424}, {Lo: 7431, Hi: 7431}, {Lo: 7452, Hi: 7452}, {Lo: 7553, Hi: 7553}, {Lo: 7556, Hi: 7557}, {Lo: 7562, Hi: 7562},
	{Lo: 7565, Hi: 7566}, {Lo: 7576, Hi: 7576}, {Lo: 7587, Hi: 7587}, {Lo: 7680, Hi: 7929}, {Lo: 8192, Hi: 8205}, {Lo: 8208, Hi: 8226},
	{Lo: 8229, Hi: 8230}, {Lo: 8239, Hi: 8252}, {Lo: 8254, Hi: 8254}, {Lo: 8256, Hi: 8256}, {Lo: 8259, Hi: 8260}, {Lo: 8263, Hi: 8263},
	{Lo: 8267, Hi: 8274}, {Lo: 8279, Hi: 8279}, {Lo: 8287, Hi: 8287}, {Lo: 8304, Hi: 8305}, {Lo: 8308, Hi: 8334}, {Lo: 8355, Hi: 8356},
	{Lo: 8359, Hi: 8359}, {Lo: 8363, Hi: 8364}, {Lo: 8377, Hi: 8378}, {Lo: 8381, Hi: 8381}, {Lo: 8400, Hi: 8402}, {Lo: 8406, Hi: 8407},
	{Lo: 8411, Hi: 8415}, {Lo: 8417, Hi: 8417}, {Lo: 8420, Hi: 8432}, {Lo: 8448, Hi: 8527}, {Lo: 8531, Hi: 8542}, {Lo: 8722, Hi: 8722},
	{Lo: 8725, Hi: 8725}, {Lo: 9251, Hi: 9251}, {Lo: 9676, Hi: 9676}, {Lo: 42791, Hi: 42791}, {Lo: 42898, Hi: 42898}, {Lo: 64256, Hi: 64260},
}
