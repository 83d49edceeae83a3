package api

import (
	"context"
	"fmt"

	"github.com/hazyhaar/normy/pkg/kit"
	"github.com/hazyhaar/normy/pkg/profile"
)

// Shared request/response types used by the HTTP transport.

type normalizeResponse struct {
	Result string `json:"result"`
}

type batchResponse struct {
	Results []string `json:"results"`
}

type profilesResponse struct {
	Profiles []string `json:"profiles"`
}

type normalizeReq struct {
	Profile string
	Text    string
}

type normalizeBatchReq struct {
	Profile string
	Texts   []string
}

// The three core kit.Endpoints, each backed by the registry.

func normalizeEndpoint(reg *profile.Registry) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*normalizeReq)
		p, err := reg.Build(req.Profile)
		if err != nil {
			return nil, err
		}
		result, err := p.Normalize(req.Text)
		if err != nil {
			return nil, err
		}
		return normalizeResponse{Result: result}, nil
	}
}

func normalizeBatchEndpoint(reg *profile.Registry) kit.Endpoint {
	return func(_ context.Context, request any) (any, error) {
		req := request.(*normalizeBatchReq)
		if len(req.Texts) == 0 {
			return nil, fmt.Errorf("texts array is empty")
		}
		if len(req.Texts) > 100 {
			return nil, fmt.Errorf("too many texts (max 100, got %d)", len(req.Texts))
		}
		p, err := reg.Build(req.Profile)
		if err != nil {
			return nil, err
		}
		results := make([]string, len(req.Texts))
		for i, text := range req.Texts {
			out, err := p.Normalize(text)
			if err != nil {
				return nil, fmt.Errorf("text %d: %w", i, err)
			}
			results[i] = out
		}
		return batchResponse{Results: results}, nil
	}
}

func listProfilesEndpoint(reg *profile.Registry) kit.Endpoint {
	return func(_ context.Context, _ any) (any, error) {
		return profilesResponse{Profiles: reg.Names()}, nil
	}
}
