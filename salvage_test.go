package salvage

import (
	"errors"
	"reflect"
	"testing"
)

func TestResolveValue(t *testing.T) {
	got := ResolveValue("<think>formatting</think>```json\n{'ok': True, 'ids': (1, 2)}\n```")
	want := map[string]any{"ok": true, "ids": []any{float64(1), float64(2)}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ResolveValue() = %#v, want %#v", got, want)
	}

	if got := ResolveValue("nothing structured here"); got != nil {
		t.Errorf("ResolveValue() = %#v, want nil", got)
	}
}

func TestParseLines(t *testing.T) {
	got, err := ParseLines("{\"a\":1}\n\n{\"a\":2}", "a")
	if err != nil {
		t.Fatalf("ParseLines() error = %v", err)
	}
	want := []string{"1", "", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseLines() = %#v, want %#v", got, want)
	}

	_, err = ParseLines("garbage line", "")
	if !errors.Is(err, ErrJSONLInvalid) {
		t.Errorf("ParseLines() error = %v, want ErrJSONLInvalid", err)
	}
}

func TestParseTaggedLines(t *testing.T) {
	got, err := ParseTaggedLines("@@2@@second\n@@1@@first", &TaggedLineOptions{SortByID: true})
	if err != nil {
		t.Fatalf("ParseTaggedLines() error = %v", err)
	}
	want := []string{"first", "second"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseTaggedLines() = %#v, want %#v", got, want)
	}

	_, err = ParseTaggedLines("no tags here", nil)
	if !errors.Is(err, ErrNoTaggedLines) {
		t.Errorf("ParseTaggedLines() error = %v, want ErrNoTaggedLines", err)
	}
}

func TestStripThinkTags(t *testing.T) {
	if got := StripThinkTags("pre<think>reasoning</think>post"); got != "prepost" {
		t.Errorf("StripThinkTags() = %q, want %q", got, "prepost")
	}
	if got := StripThinkTags("pre<think>reasoning"); got != "pre" {
		t.Errorf("StripThinkTags() = %q, want %q", got, "pre")
	}
}
