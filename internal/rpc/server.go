package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/surfjournal/backend/internal/surfjournal"
)

func New(logger *slog.Logger, manager *surfjournal.Manager) *zenrpc.Server {
	rpcService := NewNewsService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("news", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "surf-journal", nil))

	return rpcServer
}
