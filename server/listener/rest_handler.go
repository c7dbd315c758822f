package listener

import (
	"bytes"
	"net/http"

	"github.com/ant0ine/go-json-rest/rest"
	"github.com/ryogrid/QueryRunner/common"
	"github.com/ryogrid/QueryRunner/queryrunner"
	"github.com/ugorji/go/codec"
)

type QueryInput struct {
	Query string
}

type Row struct {
	C []interface{}
}

// QueryOutput is the JSON answer of /Query. Text is the rendered result, the
// same string the TCP transport sends.
type QueryOutput struct {
	Header []string
	Result []Row
	Text   string
	Error  string
}

// MsgPackOutput is the msgpack answer of /QueryMsgPack.
type MsgPackOutput struct {
	Header []string
	Rows   [][]interface{}
}

type restServer struct {
	qr        *queryrunner.QueryRunner
	isStopped func() bool
}

// NewRestHandler serves POST /Query and POST /QueryMsgPack, both taking a
// {"Query": "..."} JSON body. Failed queries are answered with status 400
// and the query's error message.
func NewRestHandler(qr *queryrunner.QueryRunner, isStopped func() bool) (http.Handler, error) {
	s := &restServer{qr, isStopped}

	api := rest.NewApi()
	api.Use(rest.DefaultDevStack...)
	api.Use(&rest.CorsMiddleware{
		RejectNonCorsRequests: false,
		OriginValidator: func(origin string, request *rest.Request) bool {
			return true
		},
		AllowedMethods:                []string{"POST"},
		AllowedHeaders:                []string{"Accept", "content-type"},
		AccessControlAllowCredentials: true,
		AccessControlMaxAge:           3600,
	})

	router, err := rest.MakeRouter(
		rest.Post("/Query", s.postQuery),
		rest.Post("/QueryMsgPack", s.postQueryMsgPack),
	)
	if err != nil {
		return nil, err
	}
	api.SetApp(router)
	return api.MakeHandler(), nil
}

func (s *restServer) decodeQuery(req *rest.Request) (string, int, string) {
	if s.isStopped() {
		return "", http.StatusGone, "Server is stopped"
	}
	input := QueryInput{}
	if err := req.DecodeJsonPayload(&input); err != nil {
		return "", http.StatusBadRequest, err.Error()
	}
	if input.Query == "" {
		return "", http.StatusBadRequest, "Query is required"
	}
	return input.Query, 0, ""
}

func (s *restServer) postQuery(w rest.ResponseWriter, req *rest.Request) {
	query, status, msg := s.decodeQuery(req)
	if status != 0 {
		rest.Error(w, msg, status)
		return
	}

	result, err := s.qr.ExecuteQuery(query)
	if err != nil {
		rest.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rows := make([]Row, 0)
	for _, row := range queryrunner.ConvValueListToIFs(queryrunner.ConvRelationToValues(result)) {
		rows = append(rows, Row{row})
	}

	w.WriteJson(&QueryOutput{
		result.Schema().GetColumnNames(), rows, queryrunner.RenderResult(result, nil), "SUCCESS",
	})
}

func (s *restServer) postQueryMsgPack(w rest.ResponseWriter, req *rest.Request) {
	query, status, msg := s.decodeQuery(req)
	if status != 0 {
		http.Error(w.(http.ResponseWriter), msg, status)
		return
	}

	result, err := s.qr.ExecuteQuery(query)
	if err != nil {
		http.Error(w.(http.ResponseWriter), err.Error(), http.StatusBadRequest)
		return
	}

	out := &MsgPackOutput{
		result.Schema().GetColumnNames(),
		queryrunner.ConvValueListToIFs(queryrunner.ConvRelationToValues(result)),
	}
	buf := new(bytes.Buffer)
	var h codec.Handle = new(codec.MsgpackHandle)
	if err = codec.NewEncoder(buf, h).Encode(out); err != nil {
		common.ShPrintf(common.ERROR, "postQueryMsgPack: encode failed: %v\n", err)
		http.Error(w.(http.ResponseWriter), err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.(http.ResponseWriter).Write(buf.Bytes())
}
