package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/imrishuroy/go-dhl-labelflow/internal/customs"
	"github.com/imrishuroy/go-dhl-labelflow/internal/labels"
	"github.com/imrishuroy/go-dhl-labelflow/internal/validation"
)

// RegisterCustomsRoutes registers POST /customs/declaration.
func RegisterCustomsRoutes(r *gin.Engine, cfg HandlerConfig) {
	v := validation.New()
	log := cfg.logger()

	r.POST("/customs/declaration", func(c *gin.Context) {
		var req validation.CustomsRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		net := labels.ShipmentWeight(req.Shipment, cfg.Settings, true)
		if req.NetWeight != nil {
			net = *req.NetWeight
		}

		decl, err := customs.BuildDeclaration(req.Shipment, net, cfg.Region.BaseCountry())
		unresolved, _ := decl.UnresolvedWeightKG.Float64()
		cfg.Metrics.RecordCustoms(unresolved, err)
		if err != nil {
			if errors.Is(err, customs.ErrNoItems) || errors.Is(err, customs.ErrInvalidQuantity) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "customs_invalid", "msg": err.Error()})
				return
			}
			log.Error("customs declaration failed", "error", err, "shipment_id", req.Shipment.ID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "customs_failed", "detail": err.Error()})
			return
		}

		if !decl.UnresolvedWeightKG.IsZero() {
			log.Warn("customs weight left unresolved",
				"shipment_id", req.Shipment.ID,
				"net_weight", net.String(),
				"unresolved_kg", decl.UnresolvedWeightKG.String(),
			)
		}
		c.JSON(http.StatusOK, decl)
	})
}
