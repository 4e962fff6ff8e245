// Package disclosure turns a person into the canonical payload encoded in
// the QR code shown when a marker is selected.
//
// The payload carries only identity data. The person's id and position
// are routing fields and are never disclosed.
package disclosure

import (
	"bytes"
	"encoding/json"

	"github.com/playperu/nostos/internal/nostos"
)

// Payload field order is the serialized key order.
type Payload struct {
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Edad      int    `json:"edad"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	DNI       string `json:"dni"`
}

func Encode(p nostos.Person) Payload {
	return Payload{
		Nombre:    p.Name,
		Apellido:  p.LastName,
		Edad:      p.Age,
		Direccion: p.Address,
		Telefono:  p.Phone,
		DNI:       p.DNI,
	}
}

// Marshal returns compact JSON with fixed key order and no HTML escaping.
// Equal payloads always produce identical bytes.
func (p Payload) Marshal() []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a struct of strings and an int cannot fail.
	_ = enc.Encode(p)
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n"))
}
