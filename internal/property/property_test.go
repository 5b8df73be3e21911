package property

import (
	"encoding/json"
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// namedString has the same textual content as a Property but a different type.
type namedString struct {
	name string
}

// TestNew_Value verifies the stored name is returned unchanged.
func TestNew_Value(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"timeout", "", " spaced ", "db.url", "пароль"} {
		require.Equal(t, name, New(name).Value())
	}
}

// TestEqual checks value equality, reflexivity and type discrimination.
func TestEqual(t *testing.T) {
	t.Parallel()

	timeout := New("timeout")

	require.True(t, timeout.Equal(timeout))
	require.True(t, timeout.Equal(New("timeout")))
	require.False(t, timeout.Equal(New("retries")))
	require.True(t, New("").Equal(Property{}))

	// Other types never match, even with identical text.
	require.False(t, timeout.Equal(nil))
	require.False(t, timeout.Equal("timeout"))
	require.False(t, timeout.Equal(namedString{name: "timeout"}))
	require.False(t, timeout.Equal(&timeout))
	require.False(t, timeout.Equal(MarkerType()))
}

// TestEqual_MatchesGoEquality ensures Equal agrees with == and map keys.
func TestEqual_MatchesGoEquality(t *testing.T) {
	t.Parallel()

	names := []string{"a", "b", "timeout", "", "A"}
	for _, left := range names {
		for _, right := range names {
			l, r := New(left), New(right)
			require.Equal(t, left == right, l.Equal(r), "%q vs %q", left, right)
			require.Equal(t, l == r, l.Equal(r))
		}
	}

	bindings := map[Property]int{New("timeout"): 1}
	require.Equal(t, 1, bindings[New("timeout")])
}

// TestHashCode pins the hash to the single-member marker contract.
func TestHashCode(t *testing.T) {
	t.Parallel()

	cases := map[string]int32{
		"":        1335633679,
		"value":   1227929214,
		"timeout": -30184850,
		"retries": 250334793,
		"db.url":  -4428560,
		"пароль":  880351311,
		"😀":       1334258284,
	}
	for name, want := range cases {
		require.Equal(t, want, New(name).HashCode(), "name %q", name)
	}
}

// TestHashCode_Formula checks the formula against StringHash for arbitrary names.
func TestHashCode_Formula(t *testing.T) {
	t.Parallel()

	memberHash := StringHash(MemberName)
	for _, name := range []string{"x", "server.port", "a much longer property name to overflow"} {
		require.Equal(t, (127*memberHash)^StringHash(name), New(name).HashCode())
	}

	// Equal markers hash equally.
	require.Equal(t, New("timeout").HashCode(), New("timeout").HashCode())
}

// TestStringHash verifies known values of the polynomial string hash.
func TestStringHash(t *testing.T) {
	t.Parallel()

	cases := map[string]int32{
		"":        0,
		"a":       97,
		"ab":      3105,
		"value":   111972721,
		"timeout": -1313911455,
		"😀":       1772899,
	}
	for s, want := range cases {
		require.Equal(t, want, StringHash(s), "string %q", s)
	}
}

// TestString verifies the diagnostic form embeds the name.
func TestString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ConfigProperty{timeout}", New("timeout").String())
	require.Equal(t, "ConfigProperty{}", New("").String())
}

// TestAnnotationType verifies every marker reports the same type identity.
func TestAnnotationType(t *testing.T) {
	t.Parallel()

	typ := New("timeout").AnnotationType()

	require.Equal(t, typ, New("retries").AnnotationType())
	require.Equal(t, MarkerType(), typ)
	require.Equal(t, TypeName, typ.Name())
	require.Equal(t, MemberName, typ.Member())
	require.Equal(t, "ConfigProperty.value", typ.String())

	var marker Marker = New("timeout")
	require.Equal(t, "timeout", marker.Value())
}

// TestFromTag ensures the declarative form is interchangeable with New.
func TestFromTag(t *testing.T) {
	t.Parallel()

	type settings struct {
		Timeout  string `property:"timeout"`
		Retries  int    `property:"retries,optional"`
		Untagged string
	}

	typ := reflect.TypeOf(settings{})

	p, ok := FromTag(typ.Field(0).Tag)
	require.True(t, ok)
	require.True(t, p.Equal(New("timeout")))
	require.Equal(t, New("timeout").HashCode(), p.HashCode())

	p, optional, ok := ParseTag(typ.Field(1).Tag)
	require.True(t, ok)
	require.True(t, optional)
	require.Equal(t, New("retries"), p)

	_, ok = FromTag(typ.Field(2).Tag)
	require.False(t, ok)
}

// TestTextMarshalling verifies the marker encodes as its name.
func TestTextMarshalling(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(map[Property]string{New("timeout"): "5s"})
	require.NoError(t, err)
	require.JSONEq(t, `{"timeout":"5s"}`, string(data))

	var decoded struct {
		Key Property `yaml:"key"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("key: retries\n"), &decoded))
	require.Equal(t, New("retries"), decoded.Key)

	var nilProperty *Property
	require.ErrorIs(t, nilProperty.UnmarshalText([]byte("x")), errNilProperty)
}

// TestConcurrentReads exercises a shared marker from many goroutines.
func TestConcurrentReads(t *testing.T) {
	t.Parallel()

	shared := New("timeout")
	want := shared.HashCode()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				if shared.HashCode() != want || !shared.Equal(New("timeout")) {
					t.Error("marker changed under concurrent reads")
				}
			}
		}()
	}

	wg.Wait()
}
