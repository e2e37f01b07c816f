package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Kinds of points of interest the portal searches for.
const (
	KindHospital     = "hospital"
	KindLab          = "lab"
	KindClinic       = "clinic"
	KindDoctorOffice = "doctor-office"
)

// DefaultRadiusMeters is the search radius around a resolved city.
const DefaultRadiusMeters = 5000

var (
	ErrNotFound    = errors.New("location not found")
	ErrUnknownKind = errors.New("unknown place kind")
)

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Place is a point of interest returned by the POI provider. Phone and
// rating are absent for most OpenStreetMap nodes.
type Place struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Phone   *string  `json:"phone"`
	Rating  *float64 `json:"rating"`
	Lat     float64  `json:"lat"`
	Lon     float64  `json:"lon"`
}

// Client talks to Nominatim for geocoding and Overpass for nearby places.
// Both are public read-only APIs; failures surface as wrapped errors and the
// caller retries by re-triggering the action.
type Client struct {
	NominatimBase string
	OverpassBase  string
	HTTPClient    *http.Client
	UserAgent     string
}

func NewClient() *Client {
	return &Client{
		NominatimBase: "https://nominatim.openstreetmap.org",
		OverpassBase:  "https://overpass-api.de/api/interpreter",
		HTTPClient:    &http.Client{Timeout: 15 * time.Second},
		UserAgent:     "curaone-backend/1.0",
	}
}

// ResolveCity geocodes a city name to coordinates using the first match.
func (c *Client) ResolveCity(ctx context.Context, city string) (Coordinates, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("format", "json")
	q.Set("limit", "1")

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := c.getJSON(ctx, c.NominatimBase+"/search?"+q.Encode(), &results); err != nil {
		return Coordinates{}, fmt.Errorf("geocode %q: %w", city, err)
	}
	if len(results) == 0 {
		return Coordinates{}, ErrNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode %q: bad latitude %q", city, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode %q: bad longitude %q", city, results[0].Lon)
	}
	return Coordinates{Lat: lat, Lon: lon}, nil
}

// FindNearby lists places of the given kind around a coordinate. An empty
// result set is not an error.
func (c *Client) FindNearby(ctx context.Context, kind string, lat, lon float64, radiusMeters int) ([]Place, error) {
	if radiusMeters <= 0 {
		radiusMeters = DefaultRadiusMeters
	}
	query, err := overpassQuery(kind, lat, lon, radiusMeters)
	if err != nil {
		return nil, err
	}

	var response struct {
		Elements []struct {
			ID   int64             `json:"id"`
			Lat  float64           `json:"lat"`
			Lon  float64           `json:"lon"`
			Tags map[string]string `json:"tags"`
		} `json:"elements"`
	}
	endpoint := c.OverpassBase + "?data=" + url.QueryEscape(query)
	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("nearby %s search: %w", kind, err)
	}

	places := make([]Place, 0, len(response.Elements))
	for _, el := range response.Elements {
		place := Place{
			ID:      el.ID,
			Name:    fallbackName(kind),
			Address: "No address available",
			Lat:     el.Lat,
			Lon:     el.Lon,
		}
		if name := el.Tags["name"]; name != "" {
			place.Name = name
		}
		if addr := el.Tags["addr:full"]; addr != "" {
			place.Address = addr
		} else if street := el.Tags["addr:street"]; street != "" {
			place.Address = street
		}
		if phone := el.Tags["phone"]; phone != "" {
			place.Phone = &phone
		}
		places = append(places, place)
	}
	return places, nil
}

// DirectionsURL builds the external map view from origin to destination.
// Longitude comes first in the route parameter, the OSM convention.
func DirectionsURL(originLat, originLon, destLat, destLon float64) string {
	route := fmt.Sprintf("%v,%v;%v,%v", originLon, originLat, destLon, destLat)
	return "https://www.openstreetmap.org/directions?engine=fossgis_osrm_car&route=" + url.QueryEscape(route)
}

func overpassQuery(kind string, lat, lon float64, radius int) (string, error) {
	around := fmt.Sprintf("(around:%d,%v,%v)", radius, lat, lon)
	switch kind {
	case KindHospital:
		return fmt.Sprintf(`[out:json];node["amenity"="hospital"]%s;out;`, around), nil
	case KindLab:
		return fmt.Sprintf(`[out:json];(node["healthcare"="laboratory"]%s;node["medical"="laboratory"]%s;);out;`, around, around), nil
	case KindClinic:
		return fmt.Sprintf(`[out:json];node["amenity"="clinic"]%s;out;`, around), nil
	case KindDoctorOffice:
		return fmt.Sprintf(`[out:json];node["amenity"="doctors"]%s;out;`, around), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}

func fallbackName(kind string) string {
	switch kind {
	case KindHospital:
		return "Unnamed Hospital"
	case KindLab:
		return "Unnamed Lab"
	case KindClinic:
		return "Unnamed Clinic"
	default:
		return "Unnamed Practice"
	}
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
