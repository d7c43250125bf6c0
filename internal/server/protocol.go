package server

import (
	"github.com/Faultbox/sphere-explorer/internal/terrain"
)

// Message types on the websocket.
const (
	TypeSettings = "settings"
	TypeMesh     = "mesh"
	TypeError    = "error"
)

// SettingsMessage is sent by clients to change their planet.
type SettingsMessage struct {
	Type       string        `json:"type"`
	Resolution int           `json:"resolution"`
	Color      [3]float32    `json:"color"`
	Noise      bool          `json:"noise"`
	NoiseScale float32       `json:"noise_scale"`
	Shape      terrain.Shape `json:"shape"`
}

// Settings converts the message to generator settings.
func (m SettingsMessage) Settings() terrain.Settings {
	return terrain.Settings{
		Resolution:   m.Resolution,
		Color:        m.Color,
		NoiseEnabled: m.Noise,
		NoiseScale:   m.NoiseScale,
		Shape:        m.Shape,
	}
}

// FacePayload is one face mesh in split attribute arrays.
type FacePayload struct {
	Vertices [][3]float32 `json:"vertices"`
	Normals  [][3]float32 `json:"normals"`
	Colors   [][3]float32 `json:"colors"`
	UVs      [][2]float32 `json:"uvs"`
	Indices  []uint32     `json:"indices"`
}

// MeshMessage carries a full planet build.
type MeshMessage struct {
	Type       string         `json:"type"`
	Generation uint64         `json:"generation"`
	Settings   SettingsPacket `json:"settings"`
	Faces      []FacePayload  `json:"faces"`
}

// SettingsPacket echoes the settings a mesh was built with.
type SettingsPacket struct {
	Resolution int           `json:"resolution"`
	Color      [3]float32    `json:"color"`
	Noise      bool          `json:"noise"`
	NoiseScale float32       `json:"noise_scale"`
	Shape      terrain.Shape `json:"shape"`
	Seed       int64         `json:"seed"`
}

// ErrorMessage reports a rejected request. The connection stays open.
type ErrorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// NewMeshMessage encodes a planet for the wire.
func NewMeshMessage(p *terrain.Planet) MeshMessage {
	s := p.Settings()
	msg := MeshMessage{
		Type:       TypeMesh,
		Generation: p.Generation(),
		Settings: SettingsPacket{
			Resolution: s.Resolution,
			Color:      s.Color,
			Noise:      s.NoiseEnabled,
			NoiseScale: s.NoiseScale,
			Shape:      s.Shape,
			Seed:       p.Seed(),
		},
	}
	for _, m := range p.Meshes() {
		msg.Faces = append(msg.Faces, facePayload(m))
	}
	return msg
}

func facePayload(m *terrain.Mesh) FacePayload {
	f := FacePayload{
		Vertices: make([][3]float32, len(m.Vertices)),
		Normals:  make([][3]float32, len(m.Vertices)),
		Colors:   make([][3]float32, len(m.Vertices)),
		UVs:      make([][2]float32, len(m.Vertices)),
		Indices:  m.Indices,
	}
	for i, v := range m.Vertices {
		f.Vertices[i] = v.Position
		f.Normals[i] = v.Normal
		f.Colors[i] = v.Color
		f.UVs[i] = v.TexCoord
	}
	return f
}
