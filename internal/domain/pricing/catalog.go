// Package pricing is the canonical server-side price table for fixed-price services.
//
// Amounts submitted by clients are never trusted; checkout amounts are always
// recomputed here from the service kind and the selected options.
package pricing

import (
	"errors"
	"fmt"
	"math"

	"agencyops/internal/domain/entities"
)

var (
	ErrUnknownService = errors.New("unknown service")
	ErrInvalidHours   = errors.New("invalid hours")
	ErrUnknownAddOn   = errors.New("unknown add-on")
)

// Item prices one service. Hourly services multiply HourlyRate by the booked hours.
type Item struct {
	Kind       entities.ServiceKind
	Name       string
	SKU        string
	BasePrice  float64
	HourlyRate float64
	MinHours   int
	MaxHours   int
	AddOns     map[string]float64
}

func (i Item) Hourly() bool {
	return i.HourlyRate > 0
}

type Catalog map[entities.ServiceKind]Item

// BuildSprintHourlyRate is the USD rate charged per build sprint hour.
const BuildSprintHourlyRate = 75.0

// Default is the price table used by the service.
var Default = Catalog{
	entities.ServiceKindAppReview: {
		Kind:      entities.ServiceKindAppReview,
		Name:      "App Review",
		SKU:       "svc-app-review",
		BasePrice: 299,
		AddOns: map[string]float64{
			"video_walkthrough": 99,
			"security_audit":    199,
			"priority":          49,
		},
	},
	entities.ServiceKindBuildSprint: {
		Kind:       entities.ServiceKindBuildSprint,
		Name:       "Build Sprint",
		SKU:        "svc-build-sprint",
		HourlyRate: BuildSprintHourlyRate,
		MinHours:   1,
		MaxHours:   80,
	},
	entities.ServiceKindMobileConversion: {
		Kind:      entities.ServiceKindMobileConversion,
		Name:      "Mobile App Conversion",
		SKU:       "svc-mobile-conversion",
		BasePrice: 1999,
		AddOns: map[string]float64{
			"app_store_submission": 299,
			"push_notifications":   249,
			"offline_mode":         399,
		},
	},
	entities.ServiceKindAppFoundation: {
		Kind:      entities.ServiceKindAppFoundation,
		Name:      "App Foundation",
		SKU:       "svc-app-foundation",
		BasePrice: 2499,
		AddOns: map[string]float64{
			"payments":  499,
			"admin_cms": 599,
		},
	},
	entities.ServiceKindBaseCMS: {
		Kind:      entities.ServiceKindBaseCMS,
		Name:      "Base CMS",
		SKU:       "svc-base-cms",
		BasePrice: 999,
		AddOns: map[string]float64{
			"blog":         199,
			"multilingual": 299,
		},
	},
}

func (c Catalog) Lookup(kind entities.ServiceKind) (Item, error) {
	item, ok := c[kind]
	if !ok {
		return Item{}, fmt.Errorf("%w: %s", ErrUnknownService, kind)
	}
	return item, nil
}

// Price returns the total charged for kind with the given hours and add-ons.
// Duplicate add-ons are charged once.
func (c Catalog) Price(kind entities.ServiceKind, hours int, addOns []string) (float64, error) {
	item, err := c.Lookup(kind)
	if err != nil {
		return 0, err
	}

	total := item.BasePrice
	if item.Hourly() {
		if hours < item.MinHours || (item.MaxHours > 0 && hours > item.MaxHours) {
			return 0, fmt.Errorf("%w: %d (allowed %d-%d)", ErrInvalidHours, hours, item.MinHours, item.MaxHours)
		}
		total += item.HourlyRate * float64(hours)
	}

	seen := make(map[string]bool, len(addOns))
	for _, a := range addOns {
		if seen[a] {
			continue
		}
		seen[a] = true
		price, ok := item.AddOns[a]
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownAddOn, a)
		}
		total += price
	}
	return roundCents(total), nil
}

// ToMinorUnits converts a USD amount to cents for processors that bill in minor units.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func FromMinorUnits(v int64) float64 {
	return float64(v) / 100
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
