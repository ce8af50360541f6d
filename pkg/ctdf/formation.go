package ctdf

import "time"

type FormationSection struct {
	Sector string `groups:"basic,detailed"`

	Wagons []*FormationWagon `groups:"basic,detailed"`
}

type FormationWagon struct {
	Position int    `groups:"basic,detailed"`
	Number   string `groups:"basic,detailed" json:",omitempty"`

	Type      string `groups:"basic,detailed"`
	TypeCode  string `groups:"detailed" json:",omitempty"`
	TypeLabel string `groups:"basic,detailed"`

	Classes    []string          `groups:"basic,detailed"`
	Attributes []*WagonAttribute `groups:"basic,detailed"`
	Status     []WagonStatus     `groups:"basic,detailed"`

	Sector string `groups:"basic,detailed"`

	NoAccessToPrevious bool   `groups:"basic,detailed"`
	NoAccessToNext     bool   `groups:"basic,detailed"`
	NoAccessMessage    string `groups:"detailed" json:",omitempty"`
}

func (w *FormationWagon) IsLocomotive() bool {
	return w.Type == WagonTypeLocomotive
}

func (w *FormationWagon) HasAttribute(code string) bool {
	for _, attribute := range w.Attributes {
		if attribute.Code == code {
			return true
		}
	}

	return false
}

func (w *FormationWagon) HasClass(class string) bool {
	for _, c := range w.Classes {
		if c == class {
			return true
		}
	}

	return false
}

func (w *FormationWagon) HasStatus(status WagonStatus) bool {
	for _, s := range w.Status {
		if s == status {
			return true
		}
	}

	return false
}

type WagonAttribute struct {
	Code  string `groups:"basic,detailed"`
	Label string `groups:"basic,detailed"`
	Icon  string `groups:"detailed"`
}

type WagonStatus string

const (
	WagonStatusClosed             WagonStatus = "Closed"
	WagonStatusGroupBoarding      WagonStatus = "GroupBoarding"
	WagonStatusReservedForTransit WagonStatus = "ReservedForTransit"
	WagonStatusUnserviced         WagonStatus = "Unserviced"
)

const (
	WagonTypeWagon      = "wagon"
	WagonTypeCouchette  = "couchette"
	WagonTypeFamily     = "family"
	WagonTypeSleeper    = "sleeper"
	WagonTypeRestaurant = "restaurant"
	WagonTypeLocomotive = "locomotive"
	WagonTypeLuggage    = "luggage"
	WagonTypeClassless  = "classless"
	WagonTypeParked     = "parked"
)

type TravelDirection string

const (
	TravelDirectionLeft    TravelDirection = "left"
	TravelDirectionRight   TravelDirection = "right"
	TravelDirectionUnknown TravelDirection = "unknown"
)

type StopFormation struct {
	UIC  int    `groups:"basic,detailed"`
	Name string `groups:"basic,detailed"`

	Track string `groups:"basic,detailed" json:",omitempty"`

	ArrivalTime   time.Time `groups:"basic,detailed"`
	DepartureTime time.Time `groups:"basic,detailed"`

	FormationString string `groups:"detailed"`

	Sections  []*FormationSection `groups:"basic,detailed"`
	Direction TravelDirection     `groups:"basic,detailed"`
}

type TrainFormation struct {
	EVU           string `groups:"basic,detailed"`
	TrainNumber   int    `groups:"basic,detailed"`
	OperationDate string `groups:"basic,detailed"`

	LastUpdate time.Time `groups:"detailed"`

	Stops []*StopFormation `groups:"basic,detailed"`
}
