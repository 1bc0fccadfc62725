package kepler

// Element data transcribed from JPL's p_elem_t1.txt and p_elem_t2.txt
// (https://ssd.jpl.nasa.gov/planets/approx_pos.html). Column order per
// row: value at J2000.0 then rate per Julian century, for a, e, I, L,
// long.peri., long.node. The long-span table adds the b, c, s, f terms
// of Table 2b for Jupiter through Pluto.

// Julian dates bounding each table's fit span.
const (
	jed3000BC = 625673.5
	jed1800AD = 2378496.5
	jed2050AD = 2469807.5
	jed3000AD = 2816787.5
)

// TableShort is the precision-optimized element set fit to 1800–2050 AD.
var TableShort = ElementTable{
	Name:   "1800-2050",
	MinJED: jed1800AD,
	MaxJED: jed2050AD,
	Rows: [NumBodies]ElementRow{
		{
			Name: "Mercury",
			A: 0.38709927, E: 0.20563593, I: 7.00497902,
			L: 252.25032350, W: 77.45779628, O: 48.33076593,
			ARate: 0.00000037, ERate: 0.00001906, IRate: -0.00594749,
			LRate: 149472.67411175, WRate: 0.16047689, ORate: -0.12534081,
		},
		{
			Name: "Venus",
			A: 0.72333566, E: 0.00677672, I: 3.39467605,
			L: 181.97909950, W: 131.60246718, O: 76.67984255,
			ARate: 0.00000390, ERate: -0.00004107, IRate: -0.00078890,
			LRate: 58517.81538729, WRate: 0.00268329, ORate: -0.27769418,
		},
		{
			Name: "EM Bary",
			A: 1.00000261, E: 0.01671123, I: -0.00001531,
			L: 100.46457166, W: 102.93768193, O: 0.0,
			ARate: 0.00000562, ERate: -0.00004392, IRate: -0.01294668,
			LRate: 35999.37244981, WRate: 0.32327364, ORate: 0.0,
		},
		{
			Name: "Mars",
			A: 1.52371034, E: 0.09339410, I: 1.84969142,
			L: -4.55343205, W: -23.94362959, O: 49.55953891,
			ARate: 0.00001847, ERate: 0.00007882, IRate: -0.00813131,
			LRate: 19140.30268499, WRate: 0.44441088, ORate: -0.29257343,
		},
		{
			Name: "Jupiter",
			A: 5.20288700, E: 0.04838624, I: 1.30439695,
			L: 34.39644051, W: 14.72847983, O: 100.47390909,
			ARate: -0.00011607, ERate: -0.00013253, IRate: -0.00183714,
			LRate: 3034.74612775, WRate: 0.21252668, ORate: 0.20469106,
		},
		{
			Name: "Saturn",
			A: 9.53667594, E: 0.05386179, I: 2.48599187,
			L: 49.95424423, W: 92.59887831, O: 113.66242448,
			ARate: -0.00125060, ERate: -0.00050991, IRate: 0.00193609,
			LRate: 1222.49362201, WRate: -0.41897216, ORate: -0.28867794,
		},
		{
			Name: "Uranus",
			A: 19.18916464, E: 0.04725744, I: 0.77263783,
			L: 313.23810451, W: 170.95427630, O: 74.01692503,
			ARate: -0.00196176, ERate: -0.00004397, IRate: -0.00242939,
			LRate: 428.48202785, WRate: 0.40805281, ORate: 0.04240589,
		},
		{
			Name: "Neptune",
			A: 30.06992276, E: 0.00859048, I: 1.77004347,
			L: -55.12002969, W: 44.96476227, O: 131.78422574,
			ARate: 0.00026291, ERate: 0.00005105, IRate: 0.00035372,
			LRate: 218.45945325, WRate: -0.32241464, ORate: -0.00508664,
		},
		{
			Name: "Pluto",
			A: 39.48211675, E: 0.24882730, I: 17.14001206,
			L: 238.92903833, W: 224.06891629, O: 110.30393684,
			ARate: -0.00031596, ERate: 0.00005170, IRate: 0.00004818,
			LRate: 145.20780515, WRate: -0.04062942, ORate: -0.01183482,
		},
	},
}

// TableLong is the wide-validity element set fit to 3000 BC – 3000 AD,
// with periodic mean-anomaly corrections for the five outer bodies.
var TableLong = ElementTable{
	Name:   "3000BC-3000AD",
	MinJED: jed3000BC,
	MaxJED: jed3000AD,
	Rows: [NumBodies]ElementRow{
		{
			Name: "Mercury",
			A: 0.38709843, E: 0.20563661, I: 7.00559432,
			L: 252.25166724, W: 77.45771895, O: 48.33961819,
			ARate: 0.00000000, ERate: 0.00002123, IRate: -0.00590158,
			LRate: 149472.67486623, WRate: 0.15940013, ORate: -0.12214182,
		},
		{
			Name: "Venus",
			A: 0.72332102, E: 0.00676399, I: 3.39777545,
			L: 181.97970850, W: 131.76755713, O: 76.67261496,
			ARate: -0.00000026, ERate: -0.00005107, IRate: 0.00043494,
			LRate: 58517.81560260, WRate: 0.05679648, ORate: -0.27274174,
		},
		{
			Name: "EM Bary",
			A: 1.00000018, E: 0.01673163, I: -0.00054346,
			L: 100.46691572, W: 102.93005885, O: -5.11260389,
			ARate: -0.00000003, ERate: -0.00003661, IRate: -0.01337178,
			LRate: 35999.37306329, WRate: 0.31795260, ORate: -0.24123856,
		},
		{
			Name: "Mars",
			A: 1.52371243, E: 0.09336511, I: 1.85181869,
			L: -4.56813164, W: -23.91744784, O: 49.71320984,
			ARate: 0.00000097, ERate: 0.00009149, IRate: -0.00724757,
			LRate: 19140.29934243, WRate: 0.45223625, ORate: -0.26852431,
		},
		{
			Name: "Jupiter",
			A: 5.20248019, E: 0.04853590, I: 1.29861416,
			L: 34.33479152, W: 14.27495244, O: 100.29282654,
			ARate: -0.00002864, ERate: 0.00018026, IRate: -0.00322699,
			LRate: 3034.90371757, WRate: 0.18199196, ORate: 0.13024619,
			B: -0.00012452, C: 0.06064060, S: -0.35635438, F: 38.35125000,
		},
		{
			Name: "Saturn",
			A: 9.54149883, E: 0.05550825, I: 2.49424102,
			L: 50.07571329, W: 92.86136063, O: 113.63998702,
			ARate: -0.00003065, ERate: -0.00032044, IRate: 0.00451969,
			LRate: 1222.11494724, WRate: 0.54179478, ORate: -0.25015002,
			B: 0.00025899, C: -0.13434469, S: 0.87320147, F: 38.35125000,
		},
		{
			Name: "Uranus",
			A: 19.18797948, E: 0.04685740, I: 0.77298127,
			L: 314.20276625, W: 172.43404441, O: 73.96250215,
			ARate: -0.00020455, ERate: -0.00001550, IRate: -0.00180155,
			LRate: 428.49512595, WRate: 0.09266985, ORate: 0.05739699,
			B: 0.00058331, C: -0.97731848, S: 0.17689245, F: 7.67025000,
		},
		{
			Name: "Neptune",
			A: 30.06952752, E: 0.00895439, I: 1.77005520,
			L: 304.22289287, W: 46.68158724, O: 131.78635853,
			ARate: 0.00006447, ERate: 0.00000818, IRate: 0.00022400,
			LRate: 218.46515314, WRate: 0.01009938, ORate: -0.00606302,
			B: -0.00041348, C: 0.68346318, S: -0.10162547, F: 7.67025000,
		},
		{
			Name: "Pluto",
			A: 39.48686035, E: 0.24885238, I: 17.14104260,
			L: 238.96535011, W: 224.09702598, O: 110.30167986,
			ARate: 0.00449751, ERate: 0.00006016, IRate: 0.00000501,
			LRate: 145.18042903, WRate: -0.00968827, ORate: -0.00809981,
			B: -0.01262724,
		},
	},
}
