package charts

// Qualitative palettes.
var (
	paletteSet1 = []string{"#E41A1C", "#377EB8", "#4DAF4A", "#984EA3", "#FF7F00", "#FFFF33", "#A65628", "#F781BF", "#999999"}
	paletteSet2 = []string{"#66C2A5", "#FC8D62", "#8DA0CB", "#E78AC3", "#A6D854", "#FFD92F", "#E5C494", "#B3B3B3"}
	paletteSet3 = []string{
		"#8DD3C7", "#FFFFB3", "#BEBADA", "#FB8072", "#80B1D3", "#FDB462",
		"#B3DE69", "#FCCDE5", "#D9D9D9", "#BC80BD", "#CCEBC5", "#FFED6F",
	}
	paletteBold = []string{
		"rgb(127,60,141)", "rgb(17,165,121)", "rgb(57,105,172)", "rgb(242,183,1)",
		"rgb(231,63,116)", "rgb(128,186,90)", "rgb(230,131,16)", "rgb(0,134,149)",
		"rgb(207,28,144)", "rgb(249,123,114)", "rgb(165,170,153)",
	}
	palettePrism = []string{
		"rgb(95,70,144)", "rgb(29,105,150)", "rgb(56,166,165)", "rgb(15,133,84)",
		"rgb(115,175,72)", "rgb(237,173,8)", "rgb(225,124,5)", "rgb(204,80,62)",
		"rgb(148,52,110)", "rgb(111,64,112)", "rgb(102,102,102)",
	}
)

// Continuous color scales, low to high.
var (
	scaleBlugrn = []string{
		"rgb(196,230,195)", "rgb(150,210,164)", "rgb(109,188,144)", "rgb(77,162,132)",
		"rgb(54,135,122)", "rgb(38,107,110)", "rgb(29,79,96)",
	}
	scaleViridisR = []string{
		"#fde725", "#b5de2b", "#6ece58", "#35b779", "#1f9e89",
		"#26828e", "#31688e", "#3e4989", "#482878", "#440154",
	}
	scaleBluered = []string{"rgb(0,0,255)", "rgb(255,0,0)"}
	scalePlasma  = []string{
		"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786",
		"#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921",
	}
	scaleReds = []string{
		"rgb(255,245,240)", "rgb(254,224,210)", "rgb(252,187,161)", "rgb(252,146,114)",
		"rgb(251,106,74)", "rgb(239,59,44)", "rgb(203,24,29)", "rgb(165,15,21)", "rgb(103,0,13)",
	}
	scaleOrRd = []string{
		"rgb(255,247,236)", "rgb(254,232,200)", "rgb(253,212,158)", "rgb(253,187,132)",
		"rgb(252,141,89)", "rgb(239,101,72)", "rgb(215,48,31)", "rgb(179,0,0)", "rgb(127,0,0)",
	}
	scaleSunset = []string{
		"rgb(243,231,155)", "rgb(250,196,132)", "rgb(248,160,126)", "rgb(235,127,134)",
		"rgb(206,102,147)", "rgb(160,89,160)", "rgb(92,83,165)",
	}
)

// Single colors.
const (
	colorSteelBlue  = "steelblue"
	colorDodgerBlue = "dodgerblue"
	colorDarkRed    = "darkred"
	colorLightBlue  = "lightblue"
)
