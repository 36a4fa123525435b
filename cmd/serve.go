package cmd

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fortelabs/pcsets/analysis"
	"github.com/fortelabs/pcsets/constants"
	"github.com/fortelabs/pcsets/examples"
	"github.com/fortelabs/pcsets/forte"
	"github.com/fortelabs/pcsets/model"
	"github.com/fortelabs/pcsets/parse"
	"github.com/fortelabs/pcsets/pcset"
)

var (
	catalog  *forte.Catalog
	analyzer *analysis.Analyzer
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analysis API",
	Long:  `Serves the analysis API over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func setFromClasses(pcs []int) (pcset.PitchClassSet, bool) {
	for _, pc := range pcs {
		if pc < 0 || pc > 11 {
			return pcset.PitchClassSet{}, false
		}
	}
	return pcset.New(pcs...), true
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var input model.AnalyzeRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
		return
	}
	s, ok := setFromClasses(input.PitchClasses)
	if !ok {
		writeError(w, http.StatusBadRequest, "pitch classes must be between 0 and 11")
		return
	}
	writeJSON(w, http.StatusOK, analyzer.Analyze(s))
}

func HandleCompare(w http.ResponseWriter, r *http.Request) {
	var input model.CompareRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
		return
	}
	s1, ok1 := setFromClasses(input.Set1)
	s2, ok2 := setFromClasses(input.Set2)
	if !ok1 || !ok2 {
		writeError(w, http.StatusBadRequest, "pitch classes must be between 0 and 11")
		return
	}
	writeJSON(w, http.StatusOK, analyzer.Compare(s1, s2))
}

type setResponse struct {
	model.CatalogEntry
	SimilarSets []string `json:"similar_sets,omitempty"`
	ZPartner    string   `json:"z_partner,omitempty"`
}

func HandleSet(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["forte"]
	if !parse.IsForteNumber(number) {
		writeError(w, http.StatusBadRequest, "not a forte number: "+number)
		return
	}
	s, ok := catalog.SetForNumber(number)
	if !ok {
		writeError(w, http.StatusNotFound, "no catalog entry for "+number)
		return
	}
	vector, _ := catalog.IntervalVectorFor(number)

	res := setResponse{
		CatalogEntry: model.CatalogEntry{
			ForteNumber:    number,
			PrimeForm:      s.Classes(),
			IntervalVector: vector,
		},
		SimilarSets: catalog.FindSimilar(number),
	}
	if partner, ok := catalog.ZPartner(s); ok {
		res.ZPartner = partner
	}
	writeJSON(w, http.StatusOK, res)
}

func HandleSimilar(w http.ResponseWriter, r *http.Request) {
	number := mux.Vars(r)["forte"]
	if _, ok := catalog.SetForNumber(number); !ok {
		writeError(w, http.StatusNotFound, "no catalog entry for "+number)
		return
	}
	similar := catalog.FindSimilar(number)
	if similar == nil {
		similar = []string{}
	}
	writeJSON(w, http.StatusOK, similar)
}

func HandleCardinality(w http.ResponseWriter, r *http.Request) {
	k, err := strconv.Atoi(mux.Vars(r)["k"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "not a cardinality: "+mux.Vars(r)["k"])
		return
	}
	sets := catalog.SetsByCardinality(k)
	if sets == nil {
		writeError(w, http.StatusBadRequest, "cardinality must be between 1 and 12")
		return
	}
	entries := make([]model.CatalogEntry, 0, len(sets))
	for _, cs := range sets {
		vector, _ := catalog.IntervalVectorFor(cs.Number)
		entries = append(entries, model.CatalogEntry{
			ForteNumber:    cs.Number,
			PrimeForm:      cs.Set.Classes(),
			IntervalVector: vector,
		})
	}
	writeJSON(w, http.StatusOK, entries)
}

func HandleExamples(w http.ResponseWriter, r *http.Request) {
	all := examples.All()
	if composer := r.URL.Query().Get("composer"); composer != "" {
		all = examples.ByComposer(composer)
	}
	writeJSON(w, http.StatusOK, all)
}

func NewRouter() *mux.Router {
	catalog = forte.NewCatalog()
	analyzer = analysis.NewAnalyzer(catalog)

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")
	router.HandleFunc("/compare", HandleCompare).Methods("POST")
	router.HandleFunc("/sets/{forte}", HandleSet).Methods("GET")
	router.HandleFunc("/sets/{forte}/similar", HandleSimilar).Methods("GET")
	router.HandleFunc("/cardinality/{k}", HandleCardinality).Methods("GET")
	router.HandleFunc("/examples", HandleExamples).Methods("GET")
	return router
}

func serve() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	addr := constants.GetServeAddr()
	handler := cors.Default().Handler(NewRouter())

	logger.Info("serving", zap.String("addr", addr))
	logger.Fatal("server exited", zap.Error(http.ListenAndServe(addr, handler)))
}
