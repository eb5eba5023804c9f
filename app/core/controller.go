package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"strings"
)

// Controller handle all base methods
type Controller struct {
}

var Config Configuration

func (c *Controller) SendJSON(w http.ResponseWriter, v interface{}, code int) {
	c.SendJSONExtra(w, nil, v, code)
}

func (c *Controller) SendJSONPaging(w http.ResponseWriter, r *http.Request, paging *Paging, v interface{}, code int) {
	c.SendJSONExtra(w, paging, v, code)
}

// SendJSONExtra marshals v to a json struct and sends appropriate headers to w
func (c *Controller) SendJSONExtra(w http.ResponseWriter, paging *Paging, v interface{}, code int) {
	w.Header().Add("Content-Type", "application/json")
	w.Header().Add("Access-Control-Allow-Origin", "*")

	var t1 string = reflect.TypeOf(v).String()
	var t2 string = reflect.TypeOf(ResponseData{}).String()
	var tmp interface{}
	if t1 == t2 || t1 == "*"+t2 {
		tmp = v
	} else {
		tmp = ResponseData{
			Status: 1,
			Data:   v,
			Paging: paging,
		}
	}

	b, err := json.Marshal(tmp)
	if err != nil {
		log.Print(fmt.Sprintf("Error while encoding JSON: %v", err))
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error": "Internal server error"}`)
	} else {
		w.WriteHeader(code)
		io.WriteString(w, string(b))
	}
}

// GetContent of the request inside given struct
func (c *Controller) GetContent(v interface{}, r *http.Request) error {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		log.Println(err.Error())
		return err
	}

	err = json.Unmarshal(body, v)
	if err != nil {
		log.Println(err)
		return err
	}

	return nil
}

// HandleError write error on response and return false if there is no error.
// The HTTP status follows the error taxonomy: validation 400, unknown id 404,
// store/render failures 500.
//
// swagger:response HandleError
func (c *Controller) HandleError(err error, w http.ResponseWriter) bool {
	if err == nil {
		return false
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		c.SendErrors(w, validationErr.Fields, http.StatusBadRequest)
		return true
	}

	if errors.Is(err, ErrNotFound) {
		msg := ResponseData{
			Status:  404,
			Message: "Record not found",
			Detail:  err.Error(),
		}
		c.SendJSON(w, &msg, http.StatusNotFound)
		return true
	}

	msg := ResponseData{
		Status:  999,
		Message: "An error occured",
		Detail:  err.Error(),
	}

	c.SendJSON(w, &msg, http.StatusInternalServerError)
	return true
}

// HandleErrorWithStatus write error on response with the given status code
//
// swagger:response HandleError
func (c *Controller) HandleErrorWithStatus(err error, w http.ResponseWriter, statusCode int) bool {
	if err == nil {
		return false
	}

	msg := ResponseData{
		Status:  999,
		Message: "An error occured",
		Detail:  err.Error(),
	}

	c.SendJSON(w, &msg, statusCode)
	return true
}

func (c *Controller) SendErrors(w http.ResponseWriter, v map[string]string, statusCode int) {
	errorText := ""
	for _, val := range v {
		errorText += val + " \n"
	}

	msg := ResponseData{
		Status:  999,
		Message: "An error occured",
		Detail:  errorText,
	}

	c.SendJSON(w, &msg, statusCode)
}

func (c *Controller) OptionsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Add("Access-Control-Allow-Headers", "Client")
	w.Header().Add("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Add("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, PATCH, DELETE")

	w.WriteHeader(http.StatusOK)
}

func (c *Controller) GetPaging(values url.Values) *Paging {
	paging := Paging{
		Page:   -1,
		Offset: -1,
		Limit:  -1,
	}
	if len(values) > 0 {
		if val, ok := values["page"]; ok && len(val) > 0 {
			if val[0] != "" {
				paging.Page, _ = strconv.Atoi(val[0])
			}
		}
		if val, ok := values["per_page"]; ok && len(val) > 0 {
			if val[0] != "" {
				paging.PerPage, _ = strconv.Atoi(val[0])
			}
		}
		if val, ok := values["limit"]; ok && len(val) > 0 {
			if val[0] != "" {
				paging.Limit, _ = strconv.Atoi(val[0])
			}
		}
		if val, ok := values["offset"]; ok && len(val) > 0 {
			if val[0] != "" {
				paging.Offset, _ = strconv.Atoi(val[0])
			}
		}
	}

	if paging.Limit > 0 || paging.Offset > 0 {
		return &paging
	}
	if paging.Page >= 0 {
		if paging.PerPage > 0 {
			paging.Limit = paging.PerPage
		}
		paging.Offset = paging.Page * paging.PerPage
	} else {
		paging.Page = 0
		paging.PerPage = 200
	}

	return &paging
}

const letterBytes = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPRSTUVWXYZ123456789"
const (
	letterIdxBits = 6                    // 6 bits to represent a letter index
	letterIdxMask = 1<<letterIdxBits - 1 // All 1-bits, as many as letterIdxBits
	letterIdxMax  = 63 / letterIdxBits   // # of letter indices fitting in 63 bits
)

func RandomString(n int) string {
	b := make([]byte, n)
	// A rand.Int63() generates 63 random bits, enough for letterIdxMax letters!
	for i, cache, remain := n-1, rand.Int63(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = rand.Int63(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(letterBytes) {
			b[i] = letterBytes[idx]
			i--
		}
		cache >>= letterIdxBits
		remain--
	}

	return string(b)
}

func (c *Controller) GetTmpUploadPath() string {
	return GetTmpUploadPath()
}

func GetTmpUploadPath() string {
	tmpPath := Config.Server.TmpPath
	if tmpPath == "" {
		tmpPath = "./tmp"
	}
	if !strings.HasSuffix(tmpPath, "/") {
		tmpPath += "/"
	}
	tmpPath += RandomString(10) + "/"
	err := os.MkdirAll(tmpPath, 0700)
	if err != nil {
		log.Println(err)
	}
	return tmpPath
}
