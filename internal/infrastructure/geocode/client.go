package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/personal-api/internal/application/identity"
	"github.com/jhoicas/personal-api/internal/domain/entity"
	"github.com/rs/zerolog/log"
)

// Ensure Client implements identity.AddressNormalizer.
var _ identity.AddressNormalizer = (*Client)(nil)

// Client consulta un servicio externo de direcciones por código postal
// (API estilo ViaCEP). Es consultivo: cualquier fallo devuelve (nil, nil) y
// la operación que lo invoca sigue con la dirección original.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient construye el cliente. Con baseURL vacío queda deshabilitado.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 1500 * time.Millisecond
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// zipLookupResponse respuesta del servicio (nombres de campo ViaCEP).
type zipLookupResponse struct {
	Street   string `json:"logradouro"`
	District string `json:"bairro"`
	City     string `json:"localidade"`
	State    string `json:"uf"`
	Error    bool   `json:"erro"`
}

// Normalize busca el código postal y completa calle/barrio/ciudad/estado.
// Devuelve nil (sin error) si el cliente está deshabilitado, el código postal
// está vacío o el servicio falla.
func (c *Client) Normalize(ctx context.Context, address entity.Address) (*entity.Address, error) {
	if c.baseURL == "" || address.ZipCode == "" {
		return nil, nil
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, address.ZipCode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil
	}
	resp, err := c.http.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("zip_code", address.ZipCode).Msg("lookup de dirección no disponible")
		return nil, nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Debug().Int("status", resp.StatusCode).Str("zip_code", address.ZipCode).Msg("lookup de dirección rechazado")
		return nil, nil
	}

	var out zipLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.Error {
		return nil, nil
	}

	normalized := address
	if out.Street != "" {
		normalized.Street = out.Street
	}
	if out.District != "" {
		normalized.District = out.District
	}
	if out.City != "" {
		normalized.City = out.City
	}
	if out.State != "" {
		normalized.State = out.State
	}
	return &normalized, nil
}
