package model

type Response struct {
	Status   string `json:"status,omitempty" bson:"status,omitempty"`
	Info     string `json:"info,omitempty" bson:"info,omitempty"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
	Response string `json:"response,omitempty" bson:"response,omitempty"`
}
