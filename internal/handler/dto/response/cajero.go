package response

import (
	"turnos-gateway/internal/domain/factura"
	"turnos-gateway/internal/pkg/errs"
	"turnos-gateway/internal/usecase/queries"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type FacturaCreadaResponse struct {
	Factura       queries.FacturaView `json:"factura"`
	TotalEstimado decimal.Decimal     `json:"total_estimado"`
}

func FromFacturaCreada(f *factura.Factura, estimado decimal.Decimal) (*FacturaCreadaResponse, error) {
	var view queries.FacturaView
	if err := copier.Copy(&view, f); err != nil {
		return nil, errs.Wrap(err, "failed to map factura")
	}
	return &FacturaCreadaResponse{Factura: view, TotalEstimado: estimado}, nil
}
