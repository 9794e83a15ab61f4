package handler

import (
	"campus-clubs-go/internal/config"
	clubdomain "campus-clubs-go/internal/domain/club"
	eventdomain "campus-clubs-go/internal/domain/event"
	gallerydomain "campus-clubs-go/internal/domain/gallery"
	joinrequestdomain "campus-clubs-go/internal/domain/joinrequest"
	memberdomain "campus-clubs-go/internal/domain/member"
	"campus-clubs-go/pkg/logger"
)

type Handlers struct {
	Clubs        *clubdomain.Service
	Members      *memberdomain.Service
	Events       *eventdomain.Service
	Gallery      *gallerydomain.Service
	JoinRequests *joinrequestdomain.Service

	limits config.LimitsConfig
	log    logger.Logger
}

func New(
	clubs *clubdomain.Service,
	members *memberdomain.Service,
	events *eventdomain.Service,
	gallery *gallerydomain.Service,
	joinRequests *joinrequestdomain.Service,
	limits config.LimitsConfig,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Clubs:        clubs,
		Members:      members,
		Events:       events,
		Gallery:      gallery,
		JoinRequests: joinRequests,
		limits:       limits,
		log:          log,
	}
}
