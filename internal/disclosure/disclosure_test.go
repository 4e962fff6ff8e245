package disclosure_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playperu/nostos/internal/disclosure"
	"github.com/playperu/nostos/internal/nostos"
	"github.com/playperu/nostos/internal/roster"
)

func TestEncodeJuanPerez(t *testing.T) {
	p, err := roster.Lima().ByID(1)
	require.NoError(t, err)

	got := disclosure.Encode(p)
	assert.Equal(t, disclosure.Payload{
		Nombre:    "Juan",
		Apellido:  "Perez",
		Edad:      68,
		Direccion: "Av. Arequipa 1234, Lima",
		Telefono:  "+51 987654321",
		DNI:       "12345678",
	}, got)

	want := `{"nombre":"Juan","apellido":"Perez","edad":68,"direccion":"Av. Arequipa 1234, Lima","telefono":"+51 987654321","dni":"12345678"}`
	assert.Equal(t, want, string(got.Marshal()))
}

func TestEncodeOmitsRoutingFields(t *testing.T) {
	for _, p := range roster.Lima().All() {
		var fields map[string]any
		require.NoError(t, json.Unmarshal(disclosure.Encode(p).Marshal(), &fields))

		assert.Len(t, fields, 6, "person %d", p.ID)
		assert.NotContains(t, fields, "id")
		assert.NotContains(t, fields, "position")
		assert.Equal(t, p.Name, fields["nombre"])
		assert.Equal(t, p.LastName, fields["apellido"])
		assert.Equal(t, float64(p.Age), fields["edad"])
		assert.Equal(t, p.Address, fields["direccion"])
		assert.Equal(t, p.Phone, fields["telefono"])
		assert.Equal(t, p.DNI, fields["dni"])
	}
}

func TestMarshalDeterministic(t *testing.T) {
	p := nostos.Person{
		ID: 7, Name: "José", LastName: "Ñahui", Age: 70,
		Address: "Jr. <Ica> & 12", Phone: "+51 900000000", DNI: "00000007",
		Position: nostos.Position{Lat: -12, Lng: -77},
	}
	first := disclosure.Encode(p).Marshal()

	q := p
	q.ID = 8
	q.Position = nostos.Position{Lat: 1, Lng: 2}
	second := disclosure.Encode(q).Marshal()

	assert.True(t, bytes.Equal(first, second), "payload depends only on disclosed fields")
	assert.Contains(t, string(first), `"direccion":"Jr. <Ica> & 12"`)
	assert.False(t, bytes.HasSuffix(first, []byte("\n")))
}

func TestRender(t *testing.T) {
	payload := disclosure.Encode(roster.Lima().All()[0]).Marshal()

	png, err := disclosure.Render(payload, disclosure.DefaultSize)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG\r\n\x1a\n")))

	again, err := disclosure.Render(payload, disclosure.DefaultSize)
	require.NoError(t, err)
	assert.Equal(t, png, again)
}

func TestRenderRejectsSize(t *testing.T) {
	_, err := disclosure.Render([]byte("x"), disclosure.MinSize-1)
	assert.Error(t, err)
	_, err = disclosure.Render([]byte("x"), disclosure.MaxSize+1)
	assert.Error(t, err)
}
