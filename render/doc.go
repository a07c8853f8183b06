// Package render draws a grid, its objectives and a route overlay into an
// image using github.com/fogleman/gg.
//
// Row y = 0 is drawn at the bottom of the image, so the picture matches the
// usual mathematical orientation of the coordinates. Each leg of a route can
// be tinted with its own palette colour through Overlay.Marks; the palette is
// fixed, so the same input always renders the same image.
package render
