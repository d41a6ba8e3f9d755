package service

import (
	"fitledger/internal/adapter"
	"fitledger/internal/logger"
	"fitledger/internal/store"
)

type Services struct {
	SyncService SyncService
	SyncJob     SyncJob
}

func NewServices(storages *store.Storages, remote adapter.RemoteStore, probe ConnectivityProbe, log *logger.Logger) *Services {
	syncSvc := NewSyncService(storages.Sync, storages.Meta, remote, probe, log)

	return &Services{
		SyncService: syncSvc,
		SyncJob:     NewSyncJob(syncSvc),
	}
}
