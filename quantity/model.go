package quantity

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/obrafacil/takeoff/model"
)

// Direction is the axis a wall runs along.
type Direction string

const (
	DirectionH Direction = "H"
	DirectionV Direction = "V"
)

// Classification tells which perimeter a wall belongs to.
type Classification string

const (
	ClassMuro    Classification = "muro"     // boundary wall
	ClassExt     Classification = "ext"      // external wall
	ClassInt     Classification = "int"      // internal wall
	ClassExtMuro Classification = "ext/muro" // external wall that is also a boundary wall
)

// OpeningType is the kind of opening.
type OpeningType string

const (
	OpeningPorta  OpeningType = "porta"
	OpeningJanela OpeningType = "janela"
	OpeningPortao OpeningType = "portao"
)

// Location is the wall group an opening is cut into.
type Location string

const (
	LocationInt  Location = "int"
	LocationExt  Location = "ext"
	LocationMuro Location = "muro"
)

// RoomType is the kind of room.
type RoomType string

const (
	RoomBanheiro RoomType = "banheiro"
	RoomCozinha  RoomType = "cozinha"
	RoomQuarto   RoomType = "quarto"
	RoomSala     RoomType = "sala"
	RoomServico  RoomType = "servico"
	RoomOutro    RoomType = "outro"
)

// WallCoordinates locate a wall on a page in percentages, origin at the
// top-left corner.
type WallCoordinates struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Wall is one straight wall run.
type Wall struct {
	ID             string           `json:"id"`
	Direction      Direction        `json:"direction"`
	Length         float64          `json:"length"`
	Classification Classification   `json:"classification"`
	Description    string           `json:"description,omitempty"`
	FloorPlanIndex *int             `json:"floorPlanIndex,omitempty"`
	Coordinates    *WallCoordinates `json:"coordinates,omitempty"`
}

// PageSegment converts the wall's percentage coordinates into page space
// for a page of the given size. ok is false when the wall has no
// coordinates.
func (w Wall) PageSegment(width, height float64) (start, end model.Point, ok bool) {
	c := w.Coordinates
	if c == nil {
		return model.Point{}, model.Point{}, false
	}
	toPage := func(px, py float64) model.Point {
		return model.Point{X: px / 100 * width, Y: (1 - py/100) * height}
	}
	return toPage(c.X1, c.Y1), toPage(c.X2, c.Y2), true
}

// Opening is a group of identical doors, windows or gates.
type Opening struct {
	Type        OpeningType `json:"type"`
	Width       float64     `json:"width"`
	Height      float64     `json:"height"`
	Quantity    float64     `json:"quantity"`
	Location    Location    `json:"location"`
	Description string      `json:"description,omitempty"`
}

// Area returns width × height × quantity.
func (o Opening) Area() float64 {
	return o.Width * o.Height * o.Quantity
}

// Room is a named room with its floor area.
type Room struct {
	Name string   `json:"name"`
	Area float64  `json:"area"`
	Type RoomType `json:"type"`
}

// Heights are the wall heights per wall group.
type Heights struct {
	HInterno float64 `json:"hInterno"`
	HExterno float64 `json:"hExterno"`
	HMuro    float64 `json:"hMuro"`
}

// Model is the canonical building model.
type Model struct {
	AreaConstruida float64   `json:"areaConstruida"`
	AreaTerreno    float64   `json:"areaTerreno"`
	Walls          []Wall    `json:"walls"`
	Openings       []Opening `json:"openings"`
	Rooms          []Room    `json:"rooms"`
	Heights        *Heights  `json:"heights"`
	Notes          string    `json:"notes,omitempty"`
}

// DecodeModel reads a JSON model.
func DecodeModel(r io.Reader) (*Model, error) {
	var m Model
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding model: %w", err)
	}
	return &m, nil
}
