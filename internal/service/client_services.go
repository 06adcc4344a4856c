package service

import (
	"github.com/MKhiriev/go-project-keeper/internal/adapter"
	"github.com/MKhiriev/go-project-keeper/internal/config"
	"github.com/MKhiriev/go-project-keeper/internal/logger"
	"github.com/MKhiriev/go-project-keeper/internal/store"
	"github.com/MKhiriev/go-project-keeper/internal/utils"
)

type ClientServices struct {
	Notifier         *Notifier
	ProjectStore     ProjectStore
	Normalizer       Normalizer
	ReconcileService ReconcileService
	AccountService   AccountService
}

// NewClientServices wires the client services over local storages and the
// remote collection. remote may be nil.
func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteCollection, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	notifier := NewNotifier(logger)
	ids := utils.NewLocalIDGenerator()

	return &ClientServices{
		Notifier: notifier,
		ProjectStore: NewProjectStore(StoreOptions{
			Remote:        remote,
			Records:       storages.Records,
			Notifier:      notifier,
			OwnerOverride: cfg.App.OwnerOverride,
			IDs:           ids,
			Logger:        logger,
		}),
		Normalizer: NewNormalizer(storages.Records, ids, notifier, logger),
		ReconcileService: NewReconcileService(storages.Records, remote, storages.Accounts, ReconcileOptions{
			DeploymentHost:   cfg.Sync.DeploymentHost,
			DeploymentAuthor: cfg.Sync.DeploymentAuthor,
			SkipPrivate:      cfg.Sync.SkipPrivate,
		}, logger),
		AccountService: NewAccountService(storages.Accounts, notifier, logger),
	}
}
