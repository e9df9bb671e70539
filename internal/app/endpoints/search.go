package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/event-trip-search-service/internal/app/dto"
)

type SearchService interface {
	ListEvents(ctx context.Context) dto.EventsResponse
	StartSearch(ctx context.Context, req dto.SearchRequest) (dto.SearchSnapshot, error)
	GetSearch(ctx context.Context, id string) (dto.SearchSnapshot, error)
	GetHotel(ctx context.Context, req dto.HotelRequest) (dto.HotelOption, error)
	CancelSearch(ctx context.Context, id string) (dto.SearchSnapshot, error)
}

type SearchEndpoint struct {
	ListEvents   endpoint.Endpoint
	StartSearch  endpoint.Endpoint
	GetSearch    endpoint.Endpoint
	GetHotel     endpoint.Endpoint
	CancelSearch endpoint.Endpoint
}

var errInvalidType = errors.New("invalid type")

func MakeSearchEndpoint(service SearchService) SearchEndpoint {
	return SearchEndpoint{
		ListEvents:   makeListEventsEndpoint(service),
		StartSearch:  makeStartSearchEndpoint(service),
		GetSearch:    makeGetSearchEndpoint(service),
		GetHotel:     makeGetHotelEndpoint(service),
		CancelSearch: makeCancelSearchEndpoint(service),
	}
}

func makeListEventsEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		return service.ListEvents(ctx), nil
	}
}

func makeStartSearchEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		snapshot, err := service.StartSearch(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return snapshot, nil
	}
}

func makeGetSearchEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchIDRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		snapshot, err := service.GetSearch(ctx, request.ID)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return snapshot, nil
	}
}

func makeGetHotelEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.HotelRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		hotel, err := service.GetHotel(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return hotel, nil
	}
}

func makeCancelSearchEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchIDRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		snapshot, err := service.CancelSearch(ctx, request.ID)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return snapshot, nil
	}
}
