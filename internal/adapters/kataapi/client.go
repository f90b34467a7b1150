// Package kataapi consulta el API HTTP del kata con la misma interfaz que
// petstats.Service, para que el CLI pueda usar uno u otro.
package kataapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"pet-kata/internal/domain/people"
	"pet-kata/internal/domain/petstats"
	"pet-kata/internal/platform/httpclient"
)

type Client struct {
	http *httpclient.Client
}

func New(baseURL string, timeout time.Duration) (*Client, error) {
	c, err := httpclient.New(baseURL, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{http: c}, nil
}

func (c *Client) FirstNames(ctx context.Context) ([]string, error) {
	var out []string
	if err := c.get(ctx, "/stats/first-names", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PeopleWithPet(ctx context.Context, t people.PetType) ([]string, error) {
	var out []string
	if err := c.get(ctx, "/stats/people", url.Values{"with": {string(t)}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PeopleWithoutPet(ctx context.Context, t people.PetType) ([]string, error) {
	var out []string
	if err := c.get(ctx, "/stats/people", url.Values{"without": {string(t)}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PetNamesOf(ctx context.Context, fullName, sep string) (string, error) {
	var out struct {
		Names string `json:"names"`
	}
	q := url.Values{"person": {fullName}, "sep": {sep}}
	if err := c.get(ctx, "/stats/pet-names", q, &out); err != nil {
		return "", err
	}
	return out.Names, nil
}

func (c *Client) PetTypeCounts(ctx context.Context) ([]petstats.TypeCount, error) {
	var out []petstats.TypeCount
	if err := c.get(ctx, "/stats/pet-types", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PetCountsByEmoji(ctx context.Context) (map[string]int, error) {
	var out map[string]int
	if err := c.get(ctx, "/stats/pet-types/emoji", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) TopPetTypes(ctx context.Context, n int) ([]petstats.TypeCount, error) {
	var out []petstats.TypeCount
	if err := c.get(ctx, "/stats/pet-types/top", url.Values{"n": {strconv.Itoa(n)}}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AgeReport(ctx context.Context) (petstats.AgeReport, error) {
	var out petstats.AgeReport
	if err := c.get(ctx, "/stats/ages", nil, &out); err != nil {
		return petstats.AgeReport{}, err
	}
	return out, nil
}

// get traduce 400/404 a los errores del dominio para que errors.Is funcione
// igual que con el servicio local.
func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	err := c.http.GetJSON(ctx, path, q, out)
	switch httpclient.StatusCode(err) {
	case 0:
		return err
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w", petstats.ErrInvalidInput, err)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", people.ErrNotFound, err)
	default:
		return err
	}
}
