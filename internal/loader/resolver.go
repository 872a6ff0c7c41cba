package loader

import (
	"github.com/guttosm/tradeflow/internal/csvio"
	"github.com/guttosm/tradeflow/internal/domain/models"
)

// InfoResolver extends the common trade metadata with deployment-specific
// fields, such as resolving extra identifier columns. The resolver runs
// once per row after the shared columns have been read; a returned error
// fails that row only.
type InfoResolver interface {
	EnrichTradeInfo(row csvio.Row, b *models.TradeInfoBuilder) error
}

// standardResolver adds nothing.
type standardResolver struct{}

// StandardResolver returns the default resolver, which leaves the
// metadata untouched.
func StandardResolver() InfoResolver { return standardResolver{} }

func (standardResolver) EnrichTradeInfo(csvio.Row, *models.TradeInfoBuilder) error { return nil }

// AttributeResolver copies the listed columns, where present, into the
// metadata attributes under their column names.
type AttributeResolver []string

func (r AttributeResolver) EnrichTradeInfo(row csvio.Row, b *models.TradeInfoBuilder) error {
	for _, name := range r {
		if v, ok := row.FindField(name); ok {
			b.Attribute(name, v)
		}
	}
	return nil
}
