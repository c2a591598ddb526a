package car

import (
	"sort"
	"strings"
	"time"

	"github.com/markbaxman/WightCars-sub000/constant"
	"github.com/markbaxman/WightCars-sub000/model"
)

// fallbackCars is the static dataset served read-only when the store is
// unreachable and degraded mode is enabled. Views are never incremented
// here and writes never reach this path.
var fallbackCars = []model.CarDetail{
	{
		CarEntity: model.CarEntity{
			ID: 1, UserID: 1, Title: "2018 Ford Fiesta 1.0 EcoBoost Titanium",
			Description: "One owner, full service history, MOT until next spring.",
			Make:        "Ford", Model: "Fiesta", Year: 2018, Mileage: 41200, Price: 849500,
			FuelType: "petrol", Transmission: "manual", BodyType: "hatchback",
			Location: "Newport", Status: constant.CarStatusActive,
			ModerationStatus: constant.ModerationApproved,
			Features:         model.StringList{"Bluetooth", "Air conditioning", "Alloy wheels"},
			Images:           model.StringList{"fallback/fiesta-front.jpg", "fallback/fiesta-rear.jpg"},
			FeaturedImage:    "fallback/fiesta-front.jpg", Views: 210,
			CreatedAt: time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC),
		},
		SellerName: "Island Motors", SellerEmail: "sales@islandmotors.example",
		SellerPhone: "01983 521000", SellerLocation: "Newport",
		SellerDealer: true, SellerVerified: true,
	},
	{
		CarEntity: model.CarEntity{
			ID: 2, UserID: 2, Title: "2015 Volkswagen Golf 1.6 TDI Match",
			Description: "Economical diesel, two keys, recent cambelt change.",
			Make:        "Volkswagen", Model: "Golf", Year: 2015, Mileage: 78900, Price: 699900,
			FuelType: "diesel", Transmission: "manual", BodyType: "hatchback",
			Location: "Ryde", Status: constant.CarStatusActive,
			ModerationStatus: constant.ModerationApproved,
			Features:         model.StringList{"Parking sensors", "Cruise control"},
			Images:           model.StringList{"fallback/golf-front.jpg"},
			FeaturedImage:    "fallback/golf-front.jpg", Views: 164,
			CreatedAt: time.Date(2026, 4, 18, 14, 0, 0, 0, time.UTC),
		},
		SellerName: "Dave Herriott", SellerEmail: "dave.h@example.net",
		SellerPhone: "07700 900123", SellerLocation: "Ryde",
		SellerDealer: false, SellerVerified: true,
	},
	{
		CarEntity: model.CarEntity{
			ID: 3, UserID: 1, Title: "2020 Nissan Qashqai 1.3 DiG-T N-Connecta",
			Description: "High spec crossover with panoramic roof and 360 camera.",
			Make:        "Nissan", Model: "Qashqai", Year: 2020, Mileage: 22750, Price: 1645000,
			FuelType: "petrol", Transmission: "automatic", BodyType: "suv",
			Location: "Newport", Status: constant.CarStatusActive,
			ModerationStatus: constant.ModerationApproved,
			Features:         model.StringList{"Panoramic roof", "360 camera", "Sat nav"},
			Images:           model.StringList{"fallback/qashqai-front.jpg", "fallback/qashqai-interior.jpg"},
			FeaturedImage:    "fallback/qashqai-front.jpg", Views: 388,
			CreatedAt: time.Date(2026, 6, 1, 11, 15, 0, 0, time.UTC),
		},
		SellerName: "Island Motors", SellerEmail: "sales@islandmotors.example",
		SellerPhone: "01983 521000", SellerLocation: "Newport",
		SellerDealer: true, SellerVerified: true,
	},
	{
		CarEntity: model.CarEntity{
			ID: 4, UserID: 3, Title: "2012 Toyota Yaris 1.33 TR",
			Description: "Cheap to run first car, ULEZ compliant, long MOT.",
			Make:        "Toyota", Model: "Yaris", Year: 2012, Mileage: 96400, Price: 379500,
			FuelType: "petrol", Transmission: "manual", BodyType: "hatchback",
			Location: "Sandown", Status: constant.CarStatusActive,
			ModerationStatus: constant.ModerationApproved,
			Features:         model.StringList{"Reversing camera"},
			Images:           model.StringList{"fallback/yaris-front.jpg"},
			FeaturedImage:    "fallback/yaris-front.jpg", Views: 97,
			CreatedAt: time.Date(2026, 3, 9, 17, 45, 0, 0, time.UTC),
		},
		SellerName: "Sophie Allsop", SellerEmail: "s.allsop@example.org",
		SellerPhone: "07700 900456", SellerLocation: "Sandown",
		SellerDealer: false, SellerVerified: false,
	},
	{
		CarEntity: model.CarEntity{
			ID: 5, UserID: 4, Title: "2019 BMW 320d M Sport Touring",
			Description: "Estate practicality with the usual M Sport extras.",
			Make:        "BMW", Model: "320d", Year: 2019, Mileage: 54300, Price: 2189900,
			FuelType: "diesel", Transmission: "automatic", BodyType: "estate",
			Location: "Cowes", Status: constant.CarStatusActive,
			ModerationStatus: constant.ModerationApproved,
			Features:         model.StringList{"Heated seats", "M Sport package", "LED headlights"},
			Images:           model.StringList{"fallback/320d-front.jpg", "fallback/320d-boot.jpg"},
			FeaturedImage:    "fallback/320d-front.jpg", Views: 542,
			CreatedAt: time.Date(2026, 6, 20, 8, 0, 0, 0, time.UTC),
		},
		SellerName: "Solent Prestige Cars", SellerEmail: "enquiries@solentprestige.example",
		SellerPhone: "01983 293000", SellerLocation: "Cowes",
		SellerDealer: true, SellerVerified: true,
	},
	{
		CarEntity: model.CarEntity{
			ID: 6, UserID: 5, Title: "2008 Land Rover Defender 90 TDCi",
			Description: "Galvanised chassis, recent clutch, ready for winter.",
			Make:        "Land Rover", Model: "Defender", Year: 2008, Mileage: 112000, Price: 2475000,
			FuelType: "diesel", Transmission: "manual", BodyType: "suv",
			Location: "Freshwater", Status: constant.CarStatusActive,
			ModerationStatus: constant.ModerationApproved,
			Features:         model.StringList{"Tow bar", "Heated front screen"},
			Images:           model.StringList{"fallback/defender-front.jpg"},
			FeaturedImage:    "fallback/defender-front.jpg", Views: 803,
			CreatedAt: time.Date(2026, 2, 14, 12, 30, 0, 0, time.UTC),
		},
		SellerName: "Pete Mew", SellerEmail: "pete.mew@example.net",
		SellerPhone: "07700 900789", SellerLocation: "Freshwater",
		SellerDealer: false, SellerVerified: true,
	},
}

// fallbackList applies the same filter semantics as the store query, in
// memory: case-insensitive equality on make/model, substring on location
// and search, open ranges for zero values.
func fallbackList(filter *model.CarFilter) ([]model.CarListItem, int64) {
	status := filter.Status
	if status == "" {
		status = constant.CarStatusActive
	}

	matched := make([]model.CarDetail, 0, len(fallbackCars))
	for _, c := range fallbackCars {
		if c.Status != status || !fallbackMatches(&c, filter) {
			continue
		}
		matched = append(matched, c)
	}

	sortFallback(matched, filter.SortBy)

	total := int64(len(matched))
	offset := (filter.Page - 1) * filter.Limit
	if offset >= len(matched) {
		return []model.CarListItem{}, total
	}
	end := offset + filter.Limit
	if end > len(matched) {
		end = len(matched)
	}

	items := make([]model.CarListItem, 0, end-offset)
	for _, c := range matched[offset:end] {
		items = append(items, listItemFromDetail(&c))
	}
	return items, total
}

// fallbackDetail serves a static detail row, or nil when the id is not in
// the dataset.
func fallbackDetail(id uint64) *model.CarDetail {
	for i := range fallbackCars {
		if fallbackCars[i].ID == id {
			detail := fallbackCars[i]
			return &detail
		}
	}
	return nil
}

func fallbackMatches(c *model.CarDetail, f *model.CarFilter) bool {
	if f.Make != "" && !strings.EqualFold(c.Make, f.Make) {
		return false
	}
	if f.Model != "" && !strings.EqualFold(c.Model, f.Model) {
		return false
	}
	if f.MinYear != 0 && c.Year < f.MinYear {
		return false
	}
	if f.MaxYear != 0 && c.Year > f.MaxYear {
		return false
	}
	if f.MinPrice != 0 && c.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice != 0 && c.Price > f.MaxPrice {
		return false
	}
	if f.MinMileage != 0 && c.Mileage < f.MinMileage {
		return false
	}
	if f.MaxMileage != 0 && c.Mileage > f.MaxMileage {
		return false
	}
	if f.FuelType != "" && !strings.EqualFold(c.FuelType, f.FuelType) {
		return false
	}
	if f.Transmission != "" && !strings.EqualFold(c.Transmission, f.Transmission) {
		return false
	}
	if f.BodyType != "" && !strings.EqualFold(c.BodyType, f.BodyType) {
		return false
	}
	if f.Location != "" && !containsFold(c.Location, f.Location) {
		return false
	}
	if f.Search != "" {
		if !containsFold(c.Title, f.Search) && !containsFold(c.Make, f.Search) && !containsFold(c.Model, f.Search) {
			return false
		}
	}
	if f.IsDealer != nil && c.SellerDealer != *f.IsDealer {
		return false
	}
	return true
}

func sortFallback(cars []model.CarDetail, sortBy string) {
	less := func(a, b *model.CarDetail) bool { return a.CreatedAt.After(b.CreatedAt) }
	switch sortBy {
	case constant.SortPriceAsc:
		less = func(a, b *model.CarDetail) bool { return a.Price < b.Price }
	case constant.SortPriceDesc:
		less = func(a, b *model.CarDetail) bool { return a.Price > b.Price }
	case constant.SortYearAsc:
		less = func(a, b *model.CarDetail) bool { return a.Year < b.Year }
	case constant.SortYearDesc:
		less = func(a, b *model.CarDetail) bool { return a.Year > b.Year }
	case constant.SortMileageAsc:
		less = func(a, b *model.CarDetail) bool { return a.Mileage < b.Mileage }
	case constant.SortMileageDesc:
		less = func(a, b *model.CarDetail) bool { return a.Mileage > b.Mileage }
	case constant.SortCreatedAsc:
		less = func(a, b *model.CarDetail) bool { return a.CreatedAt.Before(b.CreatedAt) }
	}

	sort.SliceStable(cars, func(i, j int) bool {
		a, b := &cars[i], &cars[j]
		if less(a, b) {
			return true
		}
		if less(b, a) {
			return false
		}
		return a.ID > b.ID
	})
}

func listItemFromDetail(c *model.CarDetail) model.CarListItem {
	return model.CarListItem{
		ID:             c.ID,
		Title:          c.Title,
		Make:           c.Make,
		Model:          c.Model,
		Year:           c.Year,
		Mileage:        c.Mileage,
		Price:          c.Price,
		FuelType:       c.FuelType,
		Transmission:   c.Transmission,
		BodyType:       c.BodyType,
		Location:       c.Location,
		Status:         c.Status,
		Images:         c.Images,
		FeaturedImage:  c.FeaturedImage,
		Views:          c.Views,
		IsFeatured:     c.IsFeatured,
		SellerName:     c.SellerName,
		SellerLocation: c.SellerLocation,
		SellerDealer:   c.SellerDealer,
		SellerVerified: c.SellerVerified,
		CreatedAt:      c.CreatedAt,
	}
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
