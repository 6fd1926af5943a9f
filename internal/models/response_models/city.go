package response_models

import "encoding/xml"

type CityWithoutPointsOfInterest struct {
	XMLName     xml.Name `json:"-" xml:"city"`
	ID          int      `json:"id" xml:"id"`
	Name        string   `json:"name" xml:"name"`
	Description string   `json:"description" xml:"description"`
}

type City struct {
	XMLName                  xml.Name          `json:"-" xml:"city"`
	ID                       int               `json:"id" xml:"id"`
	Name                     string            `json:"name" xml:"name"`
	Description              string            `json:"description" xml:"description"`
	NumberOfPointsOfInterest int               `json:"numberOfPointsOfInterest" xml:"numberOfPointsOfInterest"`
	PointsOfInterest         []PointOfInterest `json:"pointsOfInterest" xml:"pointsOfInterest>pointOfInterest"`
}
