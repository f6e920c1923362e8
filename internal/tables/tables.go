// Package tables holds the fixed TMS5220 quantisation tables used by the
// analyser and synthesiser. Every value here must match the reference
// chip's tables bit-for-bit: nearest-neighbour quantisation decisions in
// the analyser depend on their exact ordering.
package tables

// Chirp is the fixed excitation waveform played back once per pitch
// period for voiced frames. Indices at or beyond len(Chirp) contribute
// zero to the excitation. Values taken from the python_wizard LATER_CHIRP
// table (https://github.com/ptwz/python_wizard).
var Chirp = [52]float32{
	0, 3, 15, 40, 76, 108, 113, 80,
	37, 38, 76, 68, 26, 50, 59, 19,
	55, 26, 37, 31, 29, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0,
}

// Energy maps the 4-bit energy index to its dequantised RMS value.
// Index 0x0 means silent and 0xF means stop-frame; both are handled by
// the caller before the table is consulted.
var Energy = [16]float32{
	0, 52, 87, 123,
	174, 246, 348, 491,
	694, 981, 1385, 1957,
	2764, 3904, 5514, 7789,
}

// Pitch maps the 6-bit pitch index to a sample-period count at 8 kHz.
// Index 0 means unvoiced.
var Pitch = [64]uint32{
	0, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29,
	30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40, 41, 42, 44, 46, 48,
	50, 52, 53, 56, 58, 60, 62, 65, 68, 70, 72, 76, 78, 80, 84, 86,
	91, 94, 98, 101, 105, 109, 114, 118, 122, 127, 132, 137, 142, 148, 153, 159,
}

// K1 maps the first reflection coefficient's 5-bit index to its value.
var K1 = [32]float32{
	-0.97850, -0.97270, -0.97070, -0.96680,
	-0.96290, -0.95900, -0.95310, -0.94140,
	-0.93360, -0.92580, -0.91600, -0.90620,
	-0.89650, -0.88280, -0.86910, -0.85350,

	-0.80420, -0.74058, -0.66019, -0.56116,
	-0.44296, -0.30706, -0.15735, -0.00005,
	0.15725, 0.30696, 0.44288, 0.56109,
	0.66013, 0.75054, 0.80416, 0.85350,
}

// K2 maps the second reflection coefficient's 5-bit index to its value.
var K2 = [32]float32{
	-0.64000, -0.58999, -0.53500, -0.47507,
	-0.41039, -0.34129, -0.26830, -0.19209,
	-0.11350, -0.03345, 0.04702, 0.12690,
	0.20515, 0.28087, 0.35325, 0.42163,

	0.48553, 0.54464, 0.59878, 0.64796,
	0.69227, 0.73190, 0.76714, 0.79828,
	0.82567, 0.84965, 0.87057, 0.88875,
	0.90451, 0.91813, 0.92988, 0.98830,
}

// K3 maps the third reflection coefficient's 4-bit index to its value.
var K3 = [16]float32{
	-0.86000, -0.75467, -0.64933, -0.54400,
	-0.43867, -0.33333, -0.22800, -0.12267,
	-0.01733, 0.08800, 0.19333, 0.29867,
	0.40400, 0.50933, 0.61467, 0.72000,
}

// K4 maps the fourth reflection coefficient's 4-bit index to its value.
var K4 = [16]float32{
	-0.64000, -0.53145, -0.42289, -0.31434,
	-0.20579, -0.09723, 0.01132, 0.11987,
	0.22843, 0.33698, 0.44553, 0.55409,
	0.66264, 0.77119, 0.87975, 0.98830,
}

// K5 maps the fifth reflection coefficient's 4-bit index to its value.
var K5 = [16]float32{
	-0.64000, -0.54933, -0.45867, -0.36800,
	-0.27733, -0.18667, -0.09600, -0.00533,
	0.08533, 0.17600, 0.26667, 0.35733,
	0.44800, 0.53867, 0.62933, 0.72000,
}

// K6 maps the sixth reflection coefficient's 4-bit index to its value.
var K6 = [16]float32{
	-0.50000, -0.41333, -0.32667, -0.24000,
	-0.15333, -0.06667, 0.02000, 0.10667,
	0.19333, 0.28000, 0.36667, 0.45333,
	0.54000, 0.62667, 0.71333, 0.80000,
}

// K7 maps the seventh reflection coefficient's 4-bit index to its value.
var K7 = [16]float32{
	-0.60000, -0.50667, -0.41333, -0.32000,
	-0.22667, -0.13333, -0.04000, 0.05333,
	0.14667, 0.24000, 0.33333, 0.42667,
	0.52000, 0.61333, 0.70667, 0.80000,
}

// K8 maps the eighth reflection coefficient's 3-bit index to its value.
var K8 = [8]float32{
	-0.50000, -0.31429, -0.12857, 0.05714,
	0.24286, 0.42857, 0.61429, 0.80000,
}

// K9 maps the ninth reflection coefficient's 3-bit index to its value.
var K9 = [8]float32{
	-0.50000, -0.34286, -0.18571, -0.02857,
	0.12857, 0.28571, 0.44286, 0.60000,
}

// K10 maps the tenth reflection coefficient's 3-bit index to its value.
var K10 = [8]float32{
	-0.40000, -0.25714, -0.11429, 0.02857,
	0.17143, 0.31429, 0.45714, 0.60000,
}
