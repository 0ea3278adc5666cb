package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"foresight/internal/forecast/catalog"
	"foresight/internal/forecast/engine"
	"foresight/internal/forecast/handler/mocks"
	"foresight/internal/forecast/service"
	"foresight/internal/report"
	dErrors "foresight/pkg/domain-errors"
	"foresight/pkg/platform/sentinel"
	"foresight/pkg/testutil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

type HandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func (s *HandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.router = chi.NewRouter()
	New(s.service, logger).Register(s.router)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) TestCatalog() {
	s.service.EXPECT().Catalog(gomock.Any()).Return(catalog.All())

	rr := testutil.Get(s.T(), s.router, "/api/catalog")

	testutil.AssertStatusOK(s.T(), rr)
	resp := testutil.UnmarshalResponse[CatalogResponse](s.T(), rr)
	s.Require().Len(resp.Records, 7)
	first := resp.Records[0]
	s.Equal("Vision and Purpose Agent", first.Name)
	s.Equal("Vision and Purpose", first.Label)
	s.Require().NotNil(first.IntegrationYear)
	s.Equal(2031, *first.IntegrationYear)
	s.Equal(2025, first.Milestones[0].Year)
}

func (s *HandlerSuite) TestRecord() {
	s.Run("known record", func() {
		r, err := catalog.Find(catalog.All(), "National Security")
		s.Require().NoError(err)
		s.service.EXPECT().Record(gomock.Any(), "National Security").Return(r, nil)

		rr := testutil.Get(s.T(), s.router, "/api/catalog/National%20Security")
		testutil.AssertStatusOK(s.T(), rr)
		resp := testutil.UnmarshalResponse[RecordResponse](s.T(), rr)
		s.Equal("National Security Agent", resp.Name)
	})

	s.Run("unknown record is 404", func() {
		s.service.EXPECT().Record(gomock.Any(), "nobody").
			Return(nil, dErrors.New(dErrors.CodeNotFound, `no forecast named "nobody"`))

		rr := testutil.Get(s.T(), s.router, "/api/catalog/nobody")
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, string(dErrors.CodeNotFound))
	})
}

func (s *HandlerSuite) TestProgress() {
	s.Run("defaults to quarterly logistic curves", func() {
		s.service.EXPECT().Progress(gomock.Any(), service.DefaultProgressRequest()).Return(&service.ProgressResult{
			Mode:   engine.ModeLogistic,
			Years:  []float64{2025, 2025.25},
			Series: []service.ProgressSeries{{Name: "A Agent", Label: "A", Values: []float64{0.67, 0.9}}},
		}, nil)

		rr := testutil.Get(s.T(), s.router, "/api/progress")
		testutil.AssertStatusOK(s.T(), rr)
		resp := testutil.UnmarshalResponse[ProgressResponse](s.T(), rr)
		s.Equal("logistic", resp.Mode)
		s.Require().Len(resp.Series, 1)
		s.Equal([]float64{0.67, 0.9}, resp.Series[0].Values)
	})

	s.Run("query parameters reach the service", func() {
		want := service.ProgressRequest{Mode: engine.ModeLinear, From: 2026, To: 2030, Step: 1}
		s.service.EXPECT().Progress(gomock.Any(), want).Return(&service.ProgressResult{Mode: engine.ModeLinear}, nil)

		rr := testutil.Get(s.T(), s.router, "/api/progress?mode=linear&from=2026&to=2030&step=1")
		testutil.AssertStatusOK(s.T(), rr)
	})

	s.Run("non-numeric bound is a bad request", func() {
		rr := testutil.Get(s.T(), s.router, "/api/progress?from=soon")
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})

	s.Run("unknown mode is a bad request", func() {
		rr := testutil.Get(s.T(), s.router, "/api/progress?mode=exponential")
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})

	s.Run("engine invalid input maps to 400", func() {
		s.service.EXPECT().Progress(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeInvalidInput, "years must not be empty"))

		rr := testutil.Get(s.T(), s.router, "/api/progress")
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeInvalidInput))
	})

	s.Run("configuration error maps to 500 without description", func() {
		s.service.EXPECT().Progress(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.New(dErrors.CodeConfiguration, "A has no integration year"))

		rr := testutil.Get(s.T(), s.router, "/api/progress")
		s.Equal(http.StatusInternalServerError, rr.Code)
		body := testutil.UnmarshalErrorResponse(s.T(), rr)
		s.Equal(string(dErrors.CodeConfiguration), body["error"])
		s.NotContains(body, "error_description")
	})
}

func (s *HandlerSuite) TestDensity() {
	s.Run("default range", func() {
		s.service.EXPECT().Density(gomock.Any(), engine.YearRange{From: 2025, To: 2035}).
			Return(&engine.Density{Domains: []string{"A"}, Years: []int{2025}, Counts: [][]int{{2}}}, nil)

		rr := testutil.Get(s.T(), s.router, "/api/density")
		testutil.AssertStatusOK(s.T(), rr)
		resp := testutil.UnmarshalResponse[DensityResponse](s.T(), rr)
		s.Equal([][]int{{2}}, resp.Counts)
	})

	s.Run("fractional year is a bad request", func() {
		rr := testutil.Get(s.T(), s.router, "/api/density?from=2025.5")
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, string(dErrors.CodeBadRequest))
	})
}

func (s *HandlerSuite) TestRelationshipsAndGraph() {
	s.service.EXPECT().Relationships(gomock.Any()).
		Return(&service.RelationshipResult{Labels: []string{"A", "B"}, Matrix: [][]int{{0, 3}, {3, 0}}}, nil)
	s.service.EXPECT().Graph(gomock.Any()).Return(&engine.Graph{
		Nodes: []engine.Node{{Label: "A", X: 1}, {Label: "B", X: -1}},
		Edges: []engine.Edge{{From: 0, To: 1, Weight: 3}},
	}, nil)

	rr := testutil.Get(s.T(), s.router, "/api/relationships")
	testutil.AssertStatusOK(s.T(), rr)
	rel := testutil.UnmarshalResponse[RelationshipResponse](s.T(), rr)
	s.Equal([][]int{{0, 3}, {3, 0}}, rel.Matrix)

	rr = testutil.Get(s.T(), s.router, "/api/relationships/graph")
	testutil.AssertStatusOK(s.T(), rr)
	g := testutil.UnmarshalResponse[GraphResponse](s.T(), rr)
	s.Len(g.Nodes, 2)
	s.Equal(EdgeResponse{From: 0, To: 1, Weight: 3}, g.Edges[0])
}

func (s *HandlerSuite) TestTimelineAndBlueprint() {
	s.service.EXPECT().Timeline(gomock.Any()).
		Return([]engine.TimelineRow{{Label: "A", Start: 2025, End: 2031}}, nil)
	s.service.EXPECT().Blueprint(gomock.Any()).Return(&service.BlueprintResult{}, nil)

	rr := testutil.Get(s.T(), s.router, "/api/timeline")
	testutil.AssertStatusOK(s.T(), rr)
	tl := testutil.UnmarshalResponse[TimelineResponse](s.T(), rr)
	s.Equal(2031, tl.Rows[0].End)

	rr = testutil.Get(s.T(), s.router, "/api/blueprint")
	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertJSONHasKey(s.T(), rr, "phases")
}

func (s *HandlerSuite) TestComparisonReport() {
	rr := testutil.Get(s.T(), s.router, "/api/report/comparison")

	testutil.AssertStatusOK(s.T(), rr)
	s.Equal(report.ContentType, rr.Header().Get("Content-Type"))
	testutil.AssertHeaderContains(s.T(), rr, "Content-Disposition", report.ComparisonFilename)
	s.Equal(report.Comparison(), rr.Body.Bytes())
}

func (s *HandlerSuite) TestProgressChart() {
	s.service.EXPECT().ProgressChart(gomock.Any(), gomock.Any()).Return([]byte("\x89PNG"), nil)

	rr := testutil.Get(s.T(), s.router, "/charts/progress.png?mode=linear")

	testutil.AssertStatusOK(s.T(), rr)
	testutil.AssertHeaderContains(s.T(), rr, "Content-Type", "image/png")
	s.Equal([]byte("\x89PNG"), rr.Body.Bytes())
}

func (s *HandlerSuite) TestHealth() {
	testutil.Given(s.T(), "a reachable cache", func(t *testing.T) {
		s.service.EXPECT().Health(gomock.Any()).Return(nil)
		rr := testutil.DoRequest(s.router, testutil.NewRequest(t, http.MethodGet, "/healthz"))

		testutil.Then(t, "status is ok", func(t *testing.T) {
			testutil.AssertStatusOK(t, rr)
			testutil.AssertJSONContains(t, rr, "status", "ok")
		})
	})

	testutil.Given(s.T(), "an unreachable cache", func(t *testing.T) {
		s.service.EXPECT().Health(gomock.Any()).Return(sentinel.ErrUnavailable)
		rr := testutil.DoRequest(s.router, testutil.NewRequest(t, http.MethodGet, "/healthz"))

		testutil.Then(t, "status is degraded but still 200", func(t *testing.T) {
			testutil.AssertStatusOK(t, rr)
			testutil.AssertJSONContains(t, rr, "cache", "unavailable")
		})
	})
}
