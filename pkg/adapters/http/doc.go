// Package http exposes a function registry over a JSON API:
//
//	GET  /functions                  list descriptors (?category=Math, ?all=true)
//	GET  /functions/{name}           one descriptor
//	POST /functions/{name}/invoke    call with {"args": [...], "locale": "en_US"}
//	GET  /metrics                    prometheus metrics, when configured
//
// Function names are case-insensitive. Unknown names answer 404 with
// suggestions. Evaluation errors such as #DIV/0! are successful calls: they
// come back as payloads with status 200.
package http
