package colour

import (
	"math"
	"sync"
)

// namedColour pairs a human-readable name with its reference RGB value.
type namedColour struct {
	name string
	rgb  RGB
}

// fallbackColours is the curated palette used when a colour has no exact CSS
// name. It favours names people actually use for clothing. Scanned in order;
// on equal distance the earlier entry wins.
var fallbackColours = []namedColour{
	{"black", RGB{0, 0, 0}},
	{"white", RGB{255, 255, 255}},
	{"gray", RGB{128, 128, 128}},
	{"silver", RGB{192, 192, 192}},
	{"red", RGB{255, 0, 0}},
	{"maroon", RGB{128, 0, 0}},
	{"orange", RGB{255, 165, 0}},
	{"gold", RGB{255, 215, 0}},
	{"yellow", RGB{255, 255, 0}},
	{"olive", RGB{128, 128, 0}},
	{"lime", RGB{0, 255, 0}},
	{"green", RGB{0, 128, 0}},
	{"cyan", RGB{0, 255, 255}},
	{"teal", RGB{0, 128, 128}},
	{"blue", RGB{0, 0, 255}},
	{"navy", RGB{0, 0, 128}},
	{"magenta", RGB{255, 0, 255}},
	{"purple", RGB{128, 0, 128}},
	{"pink", RGB{255, 192, 203}},
	{"brown", RGB{165, 42, 42}},
	{"beige", RGB{245, 245, 220}},
	{"tan", RGB{210, 180, 140}},
	{"coral", RGB{255, 127, 80}},
	{"indigo", RGB{75, 0, 130}},
	{"lavender", RGB{230, 230, 250}},
	{"off-white", RGB{245, 245, 245}},
	{"dark slate", RGB{47, 79, 79}},
	{"steel blue", RGB{70, 130, 180}},
	{"firebrick", RGB{178, 34, 34}},
	{"crimson", RGB{220, 20, 60}},
	{"tomato", RGB{255, 99, 71}},
	{"salmon", RGB{250, 128, 114}},
	{"peach", RGB{255, 218, 185}},
	{"khaki", RGB{240, 230, 140}},
	{"dark khaki", RGB{189, 183, 107}},
	{"light green", RGB{144, 238, 144}},
	{"forest green", RGB{34, 139, 34}},
	{"dark green", RGB{0, 100, 0}},
	{"dark sea green", RGB{143, 188, 143}},
	{"sky blue", RGB{135, 206, 235}},
	{"light blue", RGB{173, 216, 230}},
	{"cornflower blue", RGB{100, 149, 237}},
	{"royal blue", RGB{65, 105, 225}},
	{"midnight blue", RGB{25, 25, 112}},
	{"blue violet", RGB{138, 43, 226}},
	{"dark violet", RGB{148, 0, 211}},
	{"orchid", RGB{218, 112, 214}},
	{"deep pink", RGB{255, 20, 147}},
	{"medium violet red", RGB{199, 21, 133}},
	{"saddle brown", RGB{139, 69, 19}},
	{"sienna", RGB{160, 82, 45}},
	{"chocolate", RGB{210, 105, 30}},
	{"peru", RGB{205, 133, 63}},
	{"sandy brown", RGB{244, 164, 96}},
	{"burlywood", RGB{222, 184, 135}},
	{"slate gray", RGB{112, 128, 144}},
	{"light slate gray", RGB{119, 136, 153}},
	{"dim gray", RGB{105, 105, 105}},
	{"dark gray", RGB{169, 169, 169}},
	{"light gray", RGB{211, 211, 211}},
}

// cssNames maps exact RGB values to their CSS3 colour names. Checked before
// the curated fallback so a pixel that lands precisely on a web colour keeps
// its standard name.
var cssNames = map[RGB]string{
	{240, 248, 255}: "aliceblue",
	{250, 235, 215}: "antiquewhite",
	{127, 255, 212}: "aquamarine",
	{240, 255, 255}: "azure",
	{245, 245, 220}: "beige",
	{255, 228, 196}: "bisque",
	{0, 0, 0}:       "black",
	{255, 235, 205}: "blanchedalmond",
	{0, 0, 255}:     "blue",
	{138, 43, 226}:  "blueviolet",
	{165, 42, 42}:   "brown",
	{222, 184, 135}: "burlywood",
	{95, 158, 160}:  "cadetblue",
	{127, 255, 0}:   "chartreuse",
	{210, 105, 30}:  "chocolate",
	{255, 127, 80}:  "coral",
	{100, 149, 237}: "cornflowerblue",
	{255, 248, 220}: "cornsilk",
	{220, 20, 60}:   "crimson",
	{0, 255, 255}:   "cyan",
	{0, 0, 139}:     "darkblue",
	{0, 139, 139}:   "darkcyan",
	{184, 134, 11}:  "darkgoldenrod",
	{169, 169, 169}: "darkgray",
	{0, 100, 0}:     "darkgreen",
	{189, 183, 107}: "darkkhaki",
	{139, 0, 139}:   "darkmagenta",
	{85, 107, 47}:   "darkolivegreen",
	{255, 140, 0}:   "darkorange",
	{153, 50, 204}:  "darkorchid",
	{139, 0, 0}:     "darkred",
	{233, 150, 122}: "darksalmon",
	{143, 188, 143}: "darkseagreen",
	{72, 61, 139}:   "darkslateblue",
	{47, 79, 79}:    "darkslategray",
	{0, 206, 209}:   "darkturquoise",
	{148, 0, 211}:   "darkviolet",
	{255, 20, 147}:  "deeppink",
	{0, 191, 255}:   "deepskyblue",
	{105, 105, 105}: "dimgray",
	{30, 144, 255}:  "dodgerblue",
	{178, 34, 34}:   "firebrick",
	{255, 250, 240}: "floralwhite",
	{34, 139, 34}:   "forestgreen",
	{220, 220, 220}: "gainsboro",
	{248, 248, 255}: "ghostwhite",
	{255, 215, 0}:   "gold",
	{218, 165, 32}:  "goldenrod",
	{128, 128, 128}: "gray",
	{0, 128, 0}:     "green",
	{173, 255, 47}:  "greenyellow",
	{240, 255, 240}: "honeydew",
	{255, 105, 180}: "hotpink",
	{205, 92, 92}:   "indianred",
	{75, 0, 130}:    "indigo",
	{255, 255, 240}: "ivory",
	{240, 230, 140}: "khaki",
	{230, 230, 250}: "lavender",
	{255, 240, 245}: "lavenderblush",
	{124, 252, 0}:   "lawngreen",
	{255, 250, 205}: "lemonchiffon",
	{173, 216, 230}: "lightblue",
	{240, 128, 128}: "lightcoral",
	{224, 255, 255}: "lightcyan",
	{250, 250, 210}: "lightgoldenrodyellow",
	{211, 211, 211}: "lightgray",
	{144, 238, 144}: "lightgreen",
	{255, 182, 193}: "lightpink",
	{255, 160, 122}: "lightsalmon",
	{32, 178, 170}:  "lightseagreen",
	{135, 206, 250}: "lightskyblue",
	{119, 136, 153}: "lightslategray",
	{176, 196, 222}: "lightsteelblue",
	{255, 255, 224}: "lightyellow",
	{0, 255, 0}:     "lime",
	{50, 205, 50}:   "limegreen",
	{250, 240, 230}: "linen",
	{255, 0, 255}:   "magenta",
	{128, 0, 0}:     "maroon",
	{102, 205, 170}: "mediumaquamarine",
	{0, 0, 205}:     "mediumblue",
	{186, 85, 211}:  "mediumorchid",
	{147, 112, 219}: "mediumpurple",
	{60, 179, 113}:  "mediumseagreen",
	{123, 104, 238}: "mediumslateblue",
	{0, 250, 154}:   "mediumspringgreen",
	{72, 209, 204}:  "mediumturquoise",
	{199, 21, 133}:  "mediumvioletred",
	{25, 25, 112}:   "midnightblue",
	{245, 255, 250}: "mintcream",
	{255, 228, 225}: "mistyrose",
	{255, 228, 181}: "moccasin",
	{255, 222, 173}: "navajowhite",
	{0, 0, 128}:     "navy",
	{253, 245, 230}: "oldlace",
	{128, 128, 0}:   "olive",
	{107, 142, 35}:  "olivedrab",
	{255, 165, 0}:   "orange",
	{255, 69, 0}:    "orangered",
	{218, 112, 214}: "orchid",
	{238, 232, 170}: "palegoldenrod",
	{152, 251, 152}: "palegreen",
	{175, 238, 238}: "paleturquoise",
	{219, 112, 147}: "palevioletred",
	{255, 239, 213}: "papayawhip",
	{255, 218, 185}: "peachpuff",
	{205, 133, 63}:  "peru",
	{255, 192, 203}: "pink",
	{221, 160, 221}: "plum",
	{176, 224, 230}: "powderblue",
	{128, 0, 128}:   "purple",
	{255, 0, 0}:     "red",
	{188, 143, 143}: "rosybrown",
	{65, 105, 225}:  "royalblue",
	{139, 69, 19}:   "saddlebrown",
	{250, 128, 114}: "salmon",
	{244, 164, 96}:  "sandybrown",
	{46, 139, 87}:   "seagreen",
	{255, 245, 238}: "seashell",
	{160, 82, 45}:   "sienna",
	{192, 192, 192}: "silver",
	{135, 206, 235}: "skyblue",
	{106, 90, 205}:  "slateblue",
	{112, 128, 144}: "slategray",
	{255, 250, 250}: "snow",
	{0, 255, 127}:   "springgreen",
	{70, 130, 180}:  "steelblue",
	{210, 180, 140}: "tan",
	{0, 128, 128}:   "teal",
	{216, 191, 216}: "thistle",
	{255, 99, 71}:   "tomato",
	{64, 224, 208}:  "turquoise",
	{238, 130, 238}: "violet",
	{245, 222, 179}: "wheat",
	{255, 255, 255}: "white",
	{245, 245, 245}: "whitesmoke",
	{255, 255, 0}:   "yellow",
	{154, 205, 50}:  "yellowgreen",
}

// Namer resolves RGB values to human-readable colour names. Lookups are
// memoised: the cache only ever maps a key to one value (lookups are
// deterministic), so concurrent callers behind the mutex always agree.
type Namer struct {
	mu    sync.Mutex
	cache map[RGB]string
}

// NewNamer creates a Namer with an empty cache. Construct one per process and
// share it; the cache has no invalidation.
func NewNamer() *Namer {
	return &Namer{cache: make(map[RGB]string)}
}

// Name returns the closest human-readable name for a colour. Exact CSS names
// win; otherwise the curated palette entry with the smallest redmean distance
// is used.
func (n *Namer) Name(rgb RGB) string {
	n.mu.Lock()
	if name, ok := n.cache[rgb]; ok {
		n.mu.Unlock()
		return name
	}
	n.mu.Unlock()

	name, ok := cssNames[rgb]
	if !ok {
		best := math.MaxFloat64
		for _, c := range fallbackColours {
			if d := Distance(rgb, c.rgb); d < best {
				best = d
				name = c.name
			}
		}
	}

	n.mu.Lock()
	n.cache[rgb] = name
	n.mu.Unlock()
	return name
}
