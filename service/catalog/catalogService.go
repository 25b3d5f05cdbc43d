package catalogsvc

import (
	repo "github.com/SelinaMogicato/Car4You/repository/catalog"

	"github.com/SelinaMogicato/Car4You/model"
)

type Repo interface {
	Vehicles() []model.Vehicle
	InsuranceOptions() []model.InsuranceOption
	Extras() []model.ExtraOption
	Locations() []string
	Colors() []string
	VehiclesForLocation(location string) []model.Vehicle
}

var _ Repo = repo.New()

type Service interface {
	Vehicles() []model.Vehicle
	InsuranceOptions() []model.InsuranceOption
	Extras() []model.ExtraOption
	Locations() []string
	Colors() []string

	// VehiclesForLocation is the listing the vehicle step shows: the full
	// fleet when no location is chosen, otherwise the deterministic
	// per-location subset.
	VehiclesForLocation(location string) []model.Vehicle
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Vehicles() []model.Vehicle                 { return s.r.Vehicles() }
func (s *service) InsuranceOptions() []model.InsuranceOption { return s.r.InsuranceOptions() }
func (s *service) Extras() []model.ExtraOption               { return s.r.Extras() }
func (s *service) Locations() []string                       { return s.r.Locations() }
func (s *service) Colors() []string                          { return s.r.Colors() }
func (s *service) VehiclesForLocation(loc string) []model.Vehicle {
	return s.r.VehiclesForLocation(loc)
}
