package lbs

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lastQuery(t *testing.T, doer *stubDoer) (string, url.Values) {
	t.Helper()
	req := doer.last()
	return req.URL.Path, req.URL.Query()
}

func TestClient_PlaceAnalysis(t *testing.T) {
	ctx := context.Background()

	t.Run("both empty fails without network", func(t *testing.T) {
		doer := &stubDoer{body: okBody}
		c := newTestClient(t, doer)

		env, err := c.PlaceAnalysis(ctx, "", "", Params{"get_poi": 1})
		assert.Nil(t, env)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, 0, doer.calls())
	})

	t.Run("location only", func(t *testing.T) {
		doer := &stubDoer{body: okBody}
		c := newTestClient(t, doer)

		_, err := c.PlaceAnalysis(ctx, "", "39.984154,116.307490", Params{"address": ""})
		require.NoError(t, err)

		path, q := lastQuery(t, doer)
		assert.Equal(t, "/ws/smart_address/place_analy/", path)
		assert.Equal(t, "39.984154,116.307490", q.Get("location"))
		_, hasAddress := q["address"]
		assert.False(t, hasAddress)
		assert.Equal(t, testKey, q.Get("key"))
	})

	t.Run("address wins when both set", func(t *testing.T) {
		doer := &stubDoer{body: okBody}
		c := newTestClient(t, doer)

		_, err := c.PlaceAnalysis(ctx, "北京市海淀区", "39.98,116.30", nil)
		require.NoError(t, err)

		_, q := lastQuery(t, doer)
		assert.Equal(t, "北京市海淀区", q.Get("address"))
		_, hasLocation := q["location"]
		assert.False(t, hasLocation)
	})
}

func TestClient_EndpointRouting(t *testing.T) {
	ctx := context.Background()
	truck := Truck{Size: 2, Height: 3.2, Width: 2.4, Weight: 8.5, AxleWeight: 4, AxleCount: 2, IsTrailer: true}

	tests := []struct {
		name   string
		call   func(c *Client) (*Envelope, error)
		method string
		path   string
		want   map[string]string
	}{
		{
			name:   "search places",
			call:   func(c *Client) (*Envelope, error) { return c.SearchPlaces(ctx, "美食", "region(北京,0)", nil) },
			method: http.MethodGet, path: "/ws/place/v1/search",
			want: map[string]string{"keyword": "美食", "boundary": "region(北京,0)"},
		},
		{
			name:   "explore",
			call:   func(c *Client) (*Envelope, error) { return c.ExplorePlaces(ctx, "nearby(40,116,1000)", nil) },
			method: http.MethodGet, path: "/ws/place/v1/explore",
			want: map[string]string{"boundary": "nearby(40,116,1000)"},
		},
		{
			name:   "detail",
			call:   func(c *Client) (*Envelope, error) { return c.PlaceDetail(ctx, "12345", nil) },
			method: http.MethodGet, path: "/ws/place/v1/detail",
			want: map[string]string{"id": "12345"},
		},
		{
			name:   "suggestion",
			call:   func(c *Client) (*Envelope, error) { return c.Suggestion(ctx, "故宫", Params{"region": "北京"}) },
			method: http.MethodGet, path: "/ws/place/v1/suggestion",
			want: map[string]string{"keyword": "故宫", "region": "北京"},
		},
		{
			name:   "reverse geocode",
			call:   func(c *Client) (*Envelope, error) { return c.ReverseGeocode(ctx, "39.98,116.30", Params{"get_poi": 1}) },
			method: http.MethodGet, path: "/ws/geocoder/v1/",
			want: map[string]string{"location": "39.98,116.30", "get_poi": "1"},
		},
		{
			name:   "geocode",
			call:   func(c *Client) (*Envelope, error) { return c.Geocode(ctx, "北京市海淀区", nil) },
			method: http.MethodGet, path: "/ws/geocoder/v1/",
			want: map[string]string{"address": "北京市海淀区"},
		},
		{
			name:   "smart geocode",
			call:   func(c *Client) (*Envelope, error) { return c.SmartGeocode(ctx, "张三 13800000000 北京市", nil) },
			method: http.MethodGet, path: "/ws/geocoder/v1/",
			want: map[string]string{"smart_address": "张三 13800000000 北京市"},
		},
		{
			name:   "truth analysis",
			call:   func(c *Client) (*Envelope, error) { return c.TruthAnalysis(ctx, "addr", nil) },
			method: http.MethodGet, path: "/ws/smart_address/truth_analy",
			want: map[string]string{"address": "addr"},
		},
		{
			name:   "address complete",
			call:   func(c *Client) (*Envelope, error) { return c.AddressComplete(ctx, "addr", nil) },
			method: http.MethodGet, path: "/ws/smart_address/address_complete",
			want: map[string]string{"address": "addr"},
		},
		{
			name:   "abnormal analysis",
			call:   func(c *Client) (*Envelope, error) { return c.AbnormalAnalysis(ctx, "addr", nil) },
			method: http.MethodGet, path: "/ws/smart_address/abnormal_analy",
			want: map[string]string{"address": "addr"},
		},
		{
			name:   "name address analysis",
			call:   func(c *Client) (*Envelope, error) { return c.NameAddressAnalysis(ctx, "shop", "addr", nil) },
			method: http.MethodGet, path: "/ws/smart_address/name_address_analy",
			want: map[string]string{"name": "shop", "address": "addr"},
		},
		{
			name:   "driving",
			call:   func(c *Client) (*Envelope, error) { return c.DirectionDriving(ctx, "39.9,116.3", "39.8,116.4", nil) },
			method: http.MethodGet, path: "/ws/direction/v1/driving/",
			want: map[string]string{"from": "39.9,116.3", "to": "39.8,116.4"},
		},
		{
			name:   "walking",
			call:   func(c *Client) (*Envelope, error) { return c.DirectionWalking(ctx, "a", "b", nil) },
			method: http.MethodGet, path: "/ws/direction/v1/walking/",
			want: map[string]string{"from": "a", "to": "b"},
		},
		{
			name:   "bicycling",
			call:   func(c *Client) (*Envelope, error) { return c.DirectionBicycling(ctx, "a", "b", nil) },
			method: http.MethodGet, path: "/ws/direction/v1/bicycling/",
			want: map[string]string{"from": "a", "to": "b"},
		},
		{
			name:   "ebicycling",
			call:   func(c *Client) (*Envelope, error) { return c.DirectionEBicycling(ctx, "a", "b", nil) },
			method: http.MethodGet, path: "/ws/direction/v1/ebicycling/",
			want: map[string]string{"from": "a", "to": "b"},
		},
		{
			name:   "transit",
			call:   func(c *Client) (*Envelope, error) { return c.DirectionTransit(ctx, "a", "b", nil) },
			method: http.MethodGet, path: "/ws/direction/v1/transit/",
			want: map[string]string{"from": "a", "to": "b"},
		},
		{
			name:   "trucking",
			call:   func(c *Client) (*Envelope, error) { return c.DirectionTrucking(ctx, "a", "b", truck, Params{"height": 99}) },
			method: http.MethodGet, path: "/ws/direction/v1/trucking",
			want: map[string]string{
				"from": "a", "to": "b", "size": "2", "height": "3.2", "width": "2.4",
				"weight": "8.5", "axle_weight": "4", "axle_count": "2", "is_trailer": "1",
			},
		},
		{
			name:   "distance matrix",
			call:   func(c *Client) (*Envelope, error) { return c.DistanceMatrix(ctx, ModeDriving, "a", "b;c", nil) },
			method: http.MethodGet, path: "/ws/distance/v1/matrix",
			want: map[string]string{"mode": "driving", "from": "a", "to": "b;c"},
		},
		{
			name:   "district list",
			call:   func(c *Client) (*Envelope, error) { return c.DistrictList(ctx, nil) },
			method: http.MethodGet, path: "/ws/district/v1/list",
			want: map[string]string{},
		},
		{
			name:   "district children",
			call:   func(c *Client) (*Envelope, error) { return c.DistrictChildren(ctx, "110000", nil) },
			method: http.MethodGet, path: "/ws/district/v1/getchildren",
			want: map[string]string{"id": "110000"},
		},
		{
			name:   "district search",
			call:   func(c *Client) (*Envelope, error) { return c.DistrictSearch(ctx, "香格里拉", nil) },
			method: http.MethodGet, path: "/ws/district/v1/search",
			want: map[string]string{"keyword": "香格里拉"},
		},
		{
			name:   "coord translate",
			call:   func(c *Client) (*Envelope, error) { return c.CoordTranslate(ctx, "39.12,116.83", CoordBaidu, nil) },
			method: http.MethodGet, path: "/ws/coord/v1/translate",
			want: map[string]string{"locations": "39.12,116.83", "type": "3"},
		},
		{
			name:   "ip location",
			call:   func(c *Client) (*Envelope, error) { return c.IPLocation(ctx, "61.135.17.68", nil) },
			method: http.MethodGet, path: "/ws/location/v1/ip",
			want: map[string]string{"ip": "61.135.17.68"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doer := &stubDoer{body: okBody}
			c := newTestClient(t, doer)

			env, err := tt.call(c)
			require.NoError(t, err)
			require.NotNil(t, env)
			require.Equal(t, 1, doer.calls())

			req := doer.last()
			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, tt.path, req.URL.Path)

			q := req.URL.Query()
			assert.Equal(t, testKey, q.Get("key"))
			assert.Len(t, q, len(tt.want)+1)
			for k, v := range tt.want {
				assert.Equal(t, v, q.Get(k), "param %s", k)
			}
		})
	}
}

func TestClient_NamedParamsWinOverOptions(t *testing.T) {
	doer := &stubDoer{body: okBody}
	c := newTestClient(t, doer)

	_, err := c.Geocode(context.Background(), "A", Params{"address": "B", "region": "北京", "key": "forged"})
	require.NoError(t, err)

	_, q := lastQuery(t, doer)
	assert.Equal(t, "A", q.Get("address"))
	assert.Equal(t, "北京", q.Get("region"))
	assert.Equal(t, testKey, q.Get("key"))
}

func TestClient_RequiredParams(t *testing.T) {
	ctx := context.Background()
	truck := Truck{Size: 2, Height: 3.2, Width: 2.4, Weight: 8.5, AxleWeight: 4, AxleCount: 2}

	tests := []struct {
		name  string
		call  func(c *Client) (*Envelope, error)
		field string
	}{
		{"search keyword", func(c *Client) (*Envelope, error) { return c.SearchPlaces(ctx, "", "region(北京,0)", nil) }, "keyword"},
		{"search boundary", func(c *Client) (*Envelope, error) { return c.SearchPlaces(ctx, "美食", "", nil) }, "boundary"},
		{"detail id", func(c *Client) (*Envelope, error) { return c.PlaceDetail(ctx, "", nil) }, "id"},
		{"geocode address", func(c *Client) (*Envelope, error) { return c.Geocode(ctx, "", Params{"address": "x"}) }, "address"},
		{"direction to", func(c *Client) (*Envelope, error) { return c.DirectionWalking(ctx, "a", "", nil) }, "to"},
		{"direction mode", func(c *Client) (*Envelope, error) { return c.Direction(ctx, Mode("flying"), "a", "b", nil) }, "mode"},
		{"matrix mode", func(c *Client) (*Envelope, error) { return c.DistanceMatrix(ctx, ModeTransit, "a", "b", nil) }, "mode"},
		{"trucking size", func(c *Client) (*Envelope, error) {
			bad := truck
			bad.Size = 5
			return c.DirectionTrucking(ctx, "a", "b", bad, nil)
		}, "size"},
		{"trucking axle weight", func(c *Client) (*Envelope, error) {
			bad := truck
			bad.AxleWeight = 0
			return c.DirectionTrucking(ctx, "a", "b", bad, nil)
		}, "axle_weight"},
		{"trucking from", func(c *Client) (*Envelope, error) { return c.DirectionTrucking(ctx, "", "b", truck, nil) }, "from"},
		{"coord type", func(c *Client) (*Envelope, error) { return c.CoordTranslate(ctx, "1,2", CoordType(9), nil) }, "type"},
		{"coord locations", func(c *Client) (*Envelope, error) { return c.CoordTranslate(ctx, "", CoordGPS, nil) }, "locations"},
		{"ip format", func(c *Client) (*Envelope, error) { return c.IPLocation(ctx, "999.1.1.1", nil) }, "ip"},
		{"ip empty", func(c *Client) (*Envelope, error) { return c.IPLocation(ctx, "", nil) }, "ip"},
		{"device id", func(c *Client) (*Envelope, error) { return c.NetworkLocation(ctx, "", nil) }, "device_id"},
		{"district id", func(c *Client) (*Envelope, error) { return c.DistrictChildren(ctx, "", nil) }, "id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doer := &stubDoer{body: okBody}
			c := newTestClient(t, doer)

			env, err := tt.call(c)
			assert.Nil(t, env)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, 0, doer.calls())
		})
	}
}

func TestClient_NetworkLocation(t *testing.T) {
	doer := &stubDoer{body: okBody}
	c := newTestClient(t, doer)

	_, err := c.NetworkLocation(context.Background(), "imei-1", Params{"wifiinfo": "mac1,-60"})
	require.NoError(t, err)

	req := doer.last()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/ws/location/v1/network", req.URL.Path)
	assert.Empty(t, req.URL.RawQuery)

	form, err := url.ParseQuery(doer.bodies[0])
	require.NoError(t, err)
	assert.Equal(t, "imei-1", form.Get("device_id"))
	assert.Equal(t, "mac1,-60", form.Get("wifiinfo"))
	assert.Equal(t, testKey, form.Get("key"))
}
