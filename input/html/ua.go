package html

// uaStylesheet holds the user agent defaults for the elements we know
// about. Everything else is displayed inline.
const uaStylesheet = `
html, body, div, p, address, blockquote, center, form, pre,
h1, h2, h3, h4, h5, h6, ul, ol, dl, dt, dd, hr, fieldset, legend,
article, aside, footer, header, main, nav, section, figure,
tr, tbody, thead, tfoot, caption { display: block }
head, style, script, title, meta, link, template { display: none }
li { display: list-item }
table { display: table }
td, th { display: table-cell; padding: 1px }
body { margin: 8px }
p, dl, multicol { margin: 16px 0 }
h1, h2, h3, h4, h5, h6 { margin: 16px 0 }
blockquote { margin: 16px 40px }
ul, ol { margin: 16px 0; padding-left: 40px }
dd { margin-left: 40px }
pre { white-space: pre; margin: 16px 0 }
center { text-align: -khtml-center }
fieldset { margin: 0 2px; padding: 6px 12px 10px; border: 2px groove }
legend { padding: 0 2px }
hr { margin: 8px auto; border: 1px inset }
nobr { white-space: nowrap }
`

// quirkyMargins lists the elements whose default vertical margins may be
// collapsed away in quirks mode.
var quirkyMargins = map[string]bool{
	"p": true, "dl": true, "ul": true, "ol": true, "blockquote": true, "pre": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// skippedElements generate no boxes, whatever their style says.
var skippedElements = map[string]bool{
	"head": true, "style": true, "script": true, "title": true, "meta": true,
	"link": true, "template": true,
}
