//go:build wireinject
// +build wireinject

package catalog

import (
	"github.com/google/wire"

	"github.com/kauelucena/barberhub/internal/account/domain"
	"github.com/kauelucena/barberhub/internal/catalog/delivery/http"
	catalogdomain "github.com/kauelucena/barberhub/internal/catalog/domain"
	"github.com/kauelucena/barberhub/internal/catalog/usecase/command"
	"github.com/kauelucena/barberhub/internal/catalog/usecase/query"
)

// Command Handlers Providers
func ProvideCreateServiceHandler(gateway catalogdomain.Gateway) *command.CreateServiceHandler {
	return command.NewCreateServiceHandler(gateway)
}

func ProvideUpdateServiceHandler(gateway catalogdomain.Gateway) *command.UpdateServiceHandler {
	return command.NewUpdateServiceHandler(gateway)
}

func ProvideDeleteServiceHandler(gateway catalogdomain.Gateway) *command.DeleteServiceHandler {
	return command.NewDeleteServiceHandler(gateway)
}

// Query Handlers Providers
func ProvideListServicesHandler(gateway catalogdomain.Gateway) *query.ListServicesHandler {
	return query.NewListServicesHandler(gateway)
}

// Wire sets
var CommandHandlerSet = wire.NewSet(
	ProvideCreateServiceHandler,
	ProvideUpdateServiceHandler,
	ProvideDeleteServiceHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideListServicesHandler,
)

var AllHandlersSet = wire.NewSet(
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(gateway catalogdomain.Gateway, sessions domain.SessionRepository) (*http.ServiceHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewServiceHandlerWithDI,
	)
	return nil, nil
}
