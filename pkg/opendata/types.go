package opendata

import "time"

type FormationResponse struct {
	LastUpdate time.Time `json:"lastUpdate"`

	TrainMetaInformation TrainMetaInformation `json:"trainMetaInformation"`

	FormationsAtScheduledStops []FormationAtScheduledStop `json:"formationsAtScheduledStops"`
	Formations                 []Formation                `json:"formations"`
}

type TrainMetaInformation struct {
	TrainNumber int    `json:"trainNumber"`
	ToCode      string `json:"toCode"`
	Runs        string `json:"runs"`
}

type FormationAtScheduledStop struct {
	ScheduledStop  ScheduledStop  `json:"scheduledStop"`
	FormationShort FormationShort `json:"formationShort"`
}

type ScheduledStop struct {
	StopPoint         StopPoint `json:"stopPoint"`
	StopModifications int       `json:"stopModifications"`
	StopType          string    `json:"stopType"`
	StopTime          StopTime  `json:"stopTime"`
	Track             string    `json:"track"`
}

// The accessors below let copier fill flat records from the nested upstream structure.

func (s *ScheduledStop) UIC() int {
	return s.StopPoint.UIC
}

func (s *ScheduledStop) Name() string {
	return s.StopPoint.Name
}

func (s *ScheduledStop) ArrivalTime() time.Time {
	return s.StopTime.ArrivalTime
}

func (s *ScheduledStop) DepartureTime() time.Time {
	return s.StopTime.DepartureTime
}

type StopPoint struct {
	UIC  int    `json:"uic"`
	Name string `json:"name"`
}

func (p StopPoint) Matches(other StopPoint) bool {
	if p.UIC != 0 && other.UIC != 0 {
		return p.UIC == other.UIC
	}

	return p.Name != "" && p.Name == other.Name
}

type StopTime struct {
	ArrivalTime   time.Time `json:"arrivalTime"`
	DepartureTime time.Time `json:"departureTime"`
}

type FormationShort struct {
	FormationShortString string        `json:"formationShortString"`
	VehicleGoals         []VehicleGoal `json:"vehicleGoals"`
}

type VehicleGoal struct {
	FromVehicleAtPosition int    `json:"fromVehicleAtPosition"`
	ToVehicleAtPosition   int    `json:"toVehicleAtPosition"`
	DestinationStopPoint  string `json:"destinationStopPointName"`
}

type Formation struct {
	FormationVehicles []FormationVehicle `json:"formationVehicles"`
}

type FormationVehicle struct {
	VehicleIdentifier VehicleIdentifier `json:"vehicleIdentifier"`

	Position int `json:"position"`
	Number   int `json:"number"`

	FormationVehicleAtScheduledStops []FormationVehicleAtScheduledStop `json:"formationVehicleAtScheduledStops"`
}

type VehicleIdentifier struct {
	TypeCode           int    `json:"typeCode"`
	TypeCodeName       string `json:"typeCodeName"`
	Evn                string `json:"evn"`
	ParentEvn          string `json:"parentEvn"`
	BuildTypeCode      string `json:"buildTypeCode"`
	CountryCode        int    `json:"countryCode"`
	VehicleNumber      int    `json:"vehicleNumber"`
	CheckNumber        int    `json:"checkNumber"`
	VehicleKeeperMark  string `json:"vehicleKeeperMark"`
	VehicleDisplayName string `json:"vehicleDisplayName"`
}

type FormationVehicleAtScheduledStop struct {
	StopPoint StopPoint `json:"stopPoint"`

	StopModifications       int    `json:"stopModifications"`
	Sectors                 string `json:"sectors"`
	AccessToPreviousVehicle bool   `json:"accessToPreviousVehicle"`
}

// FirstVehicleSectors returns the sector field of the lowest positioned vehicle calling at stop.
func (r *FormationResponse) FirstVehicleSectors(stop StopPoint) string {
	found := false
	lowestPosition := 0
	sectors := ""

	for _, formation := range r.Formations {
		for _, vehicle := range formation.FormationVehicles {
			if found && vehicle.Position >= lowestPosition {
				continue
			}

			for _, vehicleStop := range vehicle.FormationVehicleAtScheduledStops {
				if vehicleStop.StopPoint.Matches(stop) {
					found = true
					lowestPosition = vehicle.Position
					sectors = vehicleStop.Sectors
					break
				}
			}
		}
	}

	return sectors
}
