package analyst_test

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/insightedge/insightedge-backend/internal"
	"github.com/insightedge/insightedge-backend/internal/analyst"
	"github.com/insightedge/insightedge-backend/internal/provider"
	"github.com/insightedge/insightedge-backend/internal/table"
)

// fakeGenerator records prompts and returns a canned result.
type fakeGenerator struct {
	requests []internal.PromptRequest
	text     string
	err      error
}

func (f *fakeGenerator) Model() string { return "fake" }

func (f *fakeGenerator) Generate(_ context.Context, req internal.PromptRequest) (string, error) {
	f.requests = append(f.requests, req)
	return f.text, f.err
}

func sampleTable(t *testing.T) *table.Table {
	t.Helper()
	tbl, err := table.Ingest([]byte("region,revenue\nnorth,100\nsouth,\n"))
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	return tbl
}

func TestInsights_NoTable(t *testing.T) {
	gen := &fakeGenerator{text: "should not be called"}
	a := analyst.New(gen)

	for _, tbl := range []*table.Table{nil, {Columns: []table.Column{{Name: "a"}}}} {
		got := a.Insights(context.Background(), tbl, "alice")
		if !reflect.DeepEqual(got, []string{analyst.NoDataMessage}) {
			t.Errorf("insights = %v, want [%q]", got, analyst.NoDataMessage)
		}
	}
	if len(gen.requests) != 0 {
		t.Errorf("provider called %d times for absent/empty table, want 0", len(gen.requests))
	}
}

func TestInsights_SplitsLines(t *testing.T) {
	gen := &fakeGenerator{text: "1. Grow north\n2. Fix south\n3. Hire\n"}
	a := analyst.New(gen)

	got := a.Insights(context.Background(), sampleTable(t), "alice")
	want := []string{"1. Grow north", "2. Fix south", "3. Hire", ""}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("insights = %q, want %q", got, want)
	}
}

func TestInsights_PromptContents(t *testing.T) {
	gen := &fakeGenerator{text: "ok"}
	a := analyst.New(gen)

	a.Insights(context.Background(), sampleTable(t), "alice")

	if len(gen.requests) != 1 {
		t.Fatalf("provider called %d times, want 1", len(gen.requests))
	}
	req := gen.requests[0]
	for _, part := range []string{"alice", "2 rows", "region", "revenue", "three business insights"} {
		if !strings.Contains(req.Text, part) {
			t.Errorf("prompt missing %q:\n%s", part, req.Text)
		}
	}
	if req.MaxNewTokens != 256 {
		t.Errorf("max_new_tokens = %d, want 256", req.MaxNewTokens)
	}
	if req.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", req.Temperature)
	}
}

func TestInsights_APIError(t *testing.T) {
	gen := &fakeGenerator{err: &provider.APIError{StatusCode: 503, Message: "busy"}}
	a := analyst.New(gen)

	got := a.Insights(context.Background(), sampleTable(t), "alice")
	if len(got) != 1 {
		t.Fatalf("insights = %v, want a single error line", got)
	}
	if !strings.Contains(got[0], "503") || !strings.Contains(got[0], "busy") {
		t.Errorf("error line %q should contain status and message", got[0])
	}
}

func TestChat_Verbatim(t *testing.T) {
	gen := &fakeGenerator{text: "  reply with whitespace \n"}
	a := analyst.New(gen)

	got := a.Chat(context.Background(), "bob", "how are sales?")
	if got != "  reply with whitespace \n" {
		t.Errorf("reply = %q, want provider text verbatim", got)
	}

	req := gen.requests[0]
	if !strings.Contains(req.Text, "bob") || !strings.Contains(req.Text, "how are sales?") {
		t.Errorf("prompt missing user or message:\n%s", req.Text)
	}
}

func TestChat_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "api error",
			err:  &provider.APIError{StatusCode: 503, Message: "busy"},
			want: []string{"503", "busy"},
		},
		{
			name: "transport error",
			err:  context.DeadlineExceeded,
			want: []string{"Error:", "deadline exceeded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := analyst.New(&fakeGenerator{err: tt.err})
			got := a.Chat(context.Background(), "bob", "hi")
			for _, part := range tt.want {
				if !strings.Contains(got, part) {
					t.Errorf("reply %q should contain %q", got, part)
				}
			}
		})
	}
}
