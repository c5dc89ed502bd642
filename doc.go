/*
Package gdocfmt converts rich, editor-produced HTML (Google Docs exports and
word-processor paste markup) into a small, portable HTML dialect that can be
shown in a foreign rendering context such as a forum post or message body.

Basic Usage:

    import "github.com/mrjoshuak/gdocfmt"

    out, err := gdocfmt.ProcessHTML(rawHTML)
    if err != nil {
        // the input could not be parsed or rendered
    }

Advanced Usage with Options:

    f := gdocfmt.New(
        gdocfmt.WithNestFlatLists(false),
        gdocfmt.WithMaxInputSize(1<<20),
        gdocfmt.WithLogger(log.Default()),
    )

    out, err := f.FormatReader(file)

Rules, applied in this order:

- Style attributes are removed from every element except spans, images and lists.
- Spans keep only bold, italic and underline, written as
  font-weight:700, font-style:italic and text-decoration:underline in
  alphabetical order. Images keep only their width.
- Lists get a level-N class for their nesting depth, and the stylesheet is
  reduced to the rules of the list classes still in use.
- Text inside <pre> keeps its whitespace; non-breaking spaces and quotes are
  written as entities.
- Markup comments and comment reference anchors such as [a] are removed.
*/
package gdocfmt
