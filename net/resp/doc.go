// Package resp provides the HTTP response writers shared by the handlers.
//
// Success responses write the payload as-is:
//
//	resp.Success(w, post)                              // 200 {...}
//	resp.WithStatusCode(w, http.StatusCreated, post)   // 201 {...}
//	resp.NoContent(w)                                  // 204, empty body
//
// Failure responses write a message object and never leak internal details:
//
//	resp.Fail(w, resp.InternalServer(""))  // 500 {"message":"Internal server error"}
//	resp.Fail(w, resp.NotFound(""))        // 404 {"message":"Not found"}
//
// Plain text is available for clients that expect it:
//
//	resp.Text(w, http.StatusBadRequest, "Missing `title` in request body")
package resp
