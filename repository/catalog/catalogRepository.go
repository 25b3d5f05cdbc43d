// repository/catalog/repo.go
package catalog

import (
	"math"
	"sort"
	"strconv"

	"github.com/SelinaMogicato/Car4You/model"
)

// Repo serves the static rental catalog. All returned slices are copies;
// callers may reorder or truncate them freely.
type Repo interface {
	Vehicles() []model.Vehicle
	InsuranceOptions() []model.InsuranceOption
	Extras() []model.ExtraOption
	Locations() []string
	Colors() []string

	VehicleByID(id string) (model.Vehicle, bool)
	InsuranceByID(id string) (model.InsuranceOption, bool)
	ExtraByID(id string) (model.ExtraOption, bool)

	// VehiclesForLocation returns the deterministic per-location subset:
	// same location string, same vehicles in the same order, every time.
	VehiclesForLocation(location string) []model.Vehicle
}

type repo struct{}

func New() Repo { return &repo{} }

func (r *repo) Vehicles() []model.Vehicle {
	out := make([]model.Vehicle, len(vehicles))
	copy(out, vehicles)
	return out
}

func (r *repo) InsuranceOptions() []model.InsuranceOption {
	out := make([]model.InsuranceOption, len(insuranceOptions))
	copy(out, insuranceOptions)
	return out
}

func (r *repo) Extras() []model.ExtraOption {
	out := make([]model.ExtraOption, len(extraOptions))
	copy(out, extraOptions)
	return out
}

func (r *repo) Locations() []string {
	out := make([]string, len(locations))
	copy(out, locations)
	return out
}

func (r *repo) Colors() []string {
	out := make([]string, len(colors))
	copy(out, colors)
	return out
}

func (r *repo) VehicleByID(id string) (model.Vehicle, bool) {
	for _, v := range vehicles {
		if v.ID == id {
			return v, true
		}
	}
	return model.Vehicle{}, false
}

func (r *repo) InsuranceByID(id string) (model.InsuranceOption, bool) {
	for _, i := range insuranceOptions {
		if i.ID == id {
			return i, true
		}
	}
	return model.InsuranceOption{}, false
}

func (r *repo) ExtraByID(id string) (model.ExtraOption, bool) {
	for _, e := range extraOptions {
		if e.ID == id {
			return e, true
		}
	}
	return model.ExtraOption{}, false
}

// VehiclesForLocation shuffles the fleet with a sine-based generator seeded
// by the location string and keeps the first 5 to 7 entries. The formula is
// pinned: existing per-location listings must stay byte-stable. Not a real
// hash, not for anything security related.
func (r *repo) VehiclesForLocation(location string) []model.Vehicle {
	all := r.Vehicles()
	if location == "" {
		return all
	}

	seed := 0
	for _, c := range location {
		seed += int(c)
	}
	rnd := func(i int) float64 {
		x := math.Sin(float64(seed+i)) * 10000
		return x - math.Floor(x)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return rnd(numericID(all[i])) < rnd(numericID(all[j]))
	})

	count := 5 + int(math.Floor(rnd(100)*3))
	if count > len(all) {
		count = len(all)
	}
	return all[:count]
}

func numericID(v model.Vehicle) int {
	n, _ := strconv.Atoi(v.ID)
	return n
}
