package respond

import (
	"encoding/json"
	"net/http"
)

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

func JSON(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// Success wraps data in the success envelope: {"status":"success","data":...}.
func Success(w http.ResponseWriter, r *http.Request, code int, data interface{}) {
	JSON(w, r, code, map[string]interface{}{
		"status": StatusSuccess,
		"data":   data,
	})
}

// SuccessList adds the collection size: {"status":"success","results":N,"data":...}.
func SuccessList(w http.ResponseWriter, r *http.Request, results int, data interface{}) {
	JSON(w, r, http.StatusOK, map[string]interface{}{
		"status":  StatusSuccess,
		"results": results,
		"data":    data,
	})
}

// Fail reports a client-side problem: {"status":"fail","message":...}.
func Fail(w http.ResponseWriter, r *http.Request, code int, message string) {
	JSON(w, r, code, map[string]string{
		"status":  StatusFail,
		"message": message,
	})
}

// FailFields reports per-field validation errors: {"status":"fail","errors":{...}}.
func FailFields(w http.ResponseWriter, r *http.Request, code int, fields map[string]string) {
	JSON(w, r, code, map[string]interface{}{
		"status": StatusFail,
		"errors": fields,
	})
}

// Error reports a server-side fault: {"status":"error","message":...}.
func Error(w http.ResponseWriter, r *http.Request, code int, message string) {
	JSON(w, r, code, map[string]string{
		"status":  StatusError,
		"message": message,
	})
}
