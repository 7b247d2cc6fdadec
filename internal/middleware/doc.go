// Package middleware holds the API middleware, the only component that
// performs I/O.
//
// For every action.Intent it builds a cuer.Request from the intent's target,
// issues it exactly once, and hands the store one terminal action:
//
//   - the success action named by Target.Success, carrying the decoded body
//   - an action.Failure wrapping cuer.ErrTransport, ErrStatus or ErrDecode
//   - an action.Failure wrapping cuer.ErrUnsupportedMethod for anything but
//     GET, PUT and DELETE
//
// PUT and DELETE always carry Content-Type: application/json. There is no
// retry, no timeout, and no ordering between concurrent intents.
package middleware
