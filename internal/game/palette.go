package game

import "image/color"

var (
	colWhite      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colBlack      = color.RGBA{A: 255}
	colLightBlue  = color.RGBA{R: 173, G: 216, B: 230, A: 255}
	colYellow     = color.RGBA{R: 255, G: 255, A: 255}
	colOrange     = color.RGBA{R: 255, G: 165, A: 255}
	colPink       = color.RGBA{R: 255, G: 192, B: 203, A: 255}
	colLightGreen = color.RGBA{R: 144, G: 238, B: 144, A: 255}
	colTitle      = color.RGBA{R: 100, G: 100, B: 100, A: 255}
)

// Base colours a new smiley is painted with.
var smileyColors = []color.RGBA{colYellow, colOrange, colPink, colLightGreen}

// Colours a smiley flashes to while reacting to a click.
var brightColors = []color.RGBA{
	{R: 255, G: 255, B: 100, A: 255},
	{R: 255, G: 100, B: 255, A: 255},
	{R: 100, G: 255, B: 255, A: 255},
	{R: 255, G: 200, B: 100, A: 255},
}

var particleColors = []color.RGBA{
	colYellow,
	colOrange,
	colPink,
	colWhite,
	{R: 255, G: 255, B: 150, A: 255},
	{R: 150, G: 255, B: 255, A: 255},
}
