package inline

import (
	"sync"

	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/text/unicode/norm"
)

// Measurer measures the advance width of a text fragment.
type Measurer interface {
	TextWidth(text string) dimen.Dimen
}

// Monospace is a measurer for monospaced text. Every grapheme occupies one
// cell of width Em, wide East Asian graphemes occupy two cells.
type Monospace struct {
	Em      dimen.Dimen
	context *uax11.Context
}

var setupGraphemes sync.Once

// NewMonospace creates a monospace measurer with a cell width of em.
func NewMonospace(em dimen.Dimen) *Monospace {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return &Monospace{
		Em:      em,
		context: uax11.LatinContext,
	}
}

// TextWidth is part of interface Measurer.
func (ms *Monospace) TextWidth(text string) dimen.Dimen {
	if text == "" {
		return 0
	}
	gstr := grapheme.StringFromString(norm.NFC.String(text))
	w := dimen.Zero
	for i := 0; i < gstr.Len(); i++ {
		cells := uax11.Width([]byte(gstr.Nth(i)), ms.context)
		w += dimen.Dimen(cells) * ms.Em
	}
	return w
}

var _ Measurer = &Monospace{}
