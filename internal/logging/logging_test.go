package logging

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestLogData_Log(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logData := NewLogData(logger)

	logData.AddData("accountID", "abc")
	stop := logData.AddTiming("queryMs")
	stop()
	addMore := logData.AddToExistingTiming("queryMs")
	addMore()
	logData.Log().Info("Handler.Test.Complete")

	entry := hook.LastEntry()
	assert.Equal(t, "Handler.Test.Complete", entry.Message)
	assert.Equal(t, "abc", entry.Data["accountID"])
	assert.Contains(t, entry.Data, "queryMs")
}

func TestGetLogData_Missing(t *testing.T) {
	assert.Nil(t, GetLogData(context.Background()))
}

func TestGetLogData_RoundTrip(t *testing.T) {
	logger, _ := test.NewNullLogger()
	logData := NewLogData(logger)

	ctx := WithLogData(context.Background(), logData)

	assert.Same(t, logData, GetLogData(ctx))
}

func TestLoggingWrapper(t *testing.T) {
	logger, hook := test.NewNullLogger()
	handler := LoggingWrapper("Status", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		assert.Same(t, logData, GetLogData(req.Context()))
		logData.AddData("ok", true)
		w.WriteHeader(http.StatusOK)
		return nil
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))

	entries := hook.AllEntries()
	assert.Len(t, entries, 2)
	assert.Equal(t, "Handler.Status.Complete", entries[1].Message)
	assert.Equal(t, true, entries[1].Data["ok"])
}

func TestLoggingWrapper_Error(t *testing.T) {
	logger, hook := test.NewNullLogger()
	handler := LoggingWrapper("Status", logger, func(w http.ResponseWriter, req *http.Request, logData *LogData) error {
		return errors.New("boom")
	})

	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "Handler.Status.Error", hook.LastEntry().Message)
}

type pingOutput struct {
	Body struct {
		Seen bool `json:"seen"`
	}
}

func TestMiddleware(t *testing.T) {
	logger, hook := test.NewNullLogger()
	_, api := humatest.New(t)
	api.UseMiddleware(Middleware(logger))

	huma.Register(api, huma.Operation{
		OperationID: "ping",
		Method:      http.MethodGet,
		Path:        "/ping",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		out := &pingOutput{}
		if logData := GetLogData(ctx); logData != nil {
			logData.AddData("userCount", 3)
			out.Body.Seen = true
		}
		return out, nil
	})
	huma.Register(api, huma.Operation{
		OperationID: "fail",
		Method:      http.MethodGet,
		Path:        "/fail",
	}, func(ctx context.Context, _ *struct{}) (*pingOutput, error) {
		return nil, huma.Error500InternalServerError("failed")
	})

	resp := api.Get("/ping")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"seen":true`)
	entry := hook.LastEntry()
	assert.Equal(t, "Handler.ping.Complete", entry.Message)
	assert.Equal(t, 3, entry.Data["userCount"])
	assert.Equal(t, http.StatusOK, entry.Data["status"])

	api.Get("/fail")
	assert.Equal(t, "Handler.fail.Error", hook.LastEntry().Message)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
}
