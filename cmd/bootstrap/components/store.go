package components

import (
	"brewzzy/internal/domain/cafe"
	"brewzzy/internal/infra/memstore"
	"brewzzy/internal/infra/notify"
	"brewzzy/internal/infra/qrencode"
	"brewzzy/internal/pkg/config"
	"brewzzy/internal/usecase/commands"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		memstore.NewRegistry,
		cafe.DefaultCatalog,
		notify.NewCenter,
		func(center *notify.Center) commands.Notifier {
			return center
		},
		func(cfg config.Config) commands.ArtifactEncoder {
			return qrencode.NewEncoder(cfg.Booking.QRSize)
		},
	),
)
