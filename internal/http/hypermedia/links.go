// Package hypermedia computes the affordance links attached to API
// representations. Link visibility mirrors authorization: a link is
// present iff the gate would allow the operation it points at, and the
// set is recomputed for every response.
package hypermedia

import (
	"bytes"
	"encoding/json"
	"fmt"

	"lecturehub/internal/domain"
)

type Link struct {
	Rel  string
	Href string
}

// Links is an ordered affordance set. It marshals to a HAL-style
// `_links` object whose key order follows slice order.
type Links []Link

func (ls Links) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, l := range ls {
		if i > 0 {
			buf.WriteByte(',')
		}
		rel, err := json.Marshal(l.Rel)
		if err != nil {
			return nil, err
		}
		href, err := json.Marshal(struct {
			Href string `json:"href"`
		}{l.Href})
		if err != nil {
			return nil, err
		}
		buf.Write(rel)
		buf.WriteByte(':')
		buf.Write(href)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type Assembler struct {
	BaseURL string
	Gate    domain.Authorizer
}

func NewAssembler(baseURL string, gate domain.Authorizer) *Assembler {
	return &Assembler{BaseURL: baseURL, Gate: gate}
}

func (a *Assembler) LectureHref(id int) string {
	return fmt.Sprintf("%s/lectures/%d", a.BaseURL, id)
}

func (a *Assembler) LecturesHref() string {
	return a.BaseURL + "/lectures"
}

// LectureLinks builds the affordances for a single lecture
// representation. The update-lecture link appears iff the gate would
// independently allow the caller to update this lecture.
func (a *Assembler) LectureLinks(lecture domain.Lecture, caller domain.Identity, created bool) Links {
	self := a.LectureHref(lecture.ID)
	links := Links{{Rel: "self", Href: self}}
	if created {
		links = append(links, Link{Rel: "query-lectures", Href: a.LecturesHref()})
	}
	if a.Gate.Authorize(caller, "", lecture.OwnerID).Allowed {
		links = append(links, Link{Rel: "update-lecture", Href: self})
	}
	return links
}

func (a *Assembler) CollectionLinks(page, size int) Links {
	return Links{{
		Rel:  "self",
		Href: fmt.Sprintf("%s?page=%d&size=%d", a.LecturesHref(), page, size),
	}}
}

func (a *Assembler) IndexLinks() Links {
	return Links{{Rel: "lectures", Href: a.LecturesHref()}}
}
