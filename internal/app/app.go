package app

import (
	"dispatch/internal/handlers/rest/dispatch_reassign_post"
	"dispatch/internal/handlers/rest/offer_accept_post"
	"dispatch/internal/handlers/rest/offer_reject_post"
	"dispatch/internal/handlers/rest/order_advance_post"
	"dispatch/internal/handlers/rest/order_cancel_post"
	"dispatch/internal/handlers/rest/order_dispatch_post"
	"dispatch/internal/handlers/rest/order_tracking_get"
	"dispatch/internal/handlers/rest/rider_get"
	"dispatch/internal/handlers/rest/rider_post"
	"dispatch/internal/handlers/rest/rider_put"
	"dispatch/internal/handlers/rest/riders_get"
	"dispatch/internal/handlers/rest/zone_resolve_get"
	orderService "dispatch/internal/service/order"
	"dispatch/pkg/background"
)

type Application struct {
	ServiceRider      ServiceRider
	ServiceDispatch   ServiceDispatch
	ServiceZone       ServiceZone
	BackgroundWorkers *background.Worker
}

type ServiceRider interface {
	rider_get.Service
	riders_get.Service
	rider_post.Service
	rider_put.Service
}

type ServiceDispatch interface {
	dispatch_reassign_post.Service
	order_dispatch_post.Service
	offer_accept_post.Service
	offer_reject_post.Service
	order_advance_post.Service
	order_cancel_post.Service
	order_tracking_get.Service
}

type ServiceZone interface {
	zone_resolve_get.Service
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}
