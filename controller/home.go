package controller

import (
	"net/http"

	"bazaarkart_be/helper/at"
	"bazaarkart_be/model"
)

func GetHome(respw http.ResponseWriter, req *http.Request) {
	var resp model.Response
	resp.Status = "success"
	resp.Response = at.GetIPaddress(req)
	at.WriteJSON(respw, http.StatusOK, resp)
}
