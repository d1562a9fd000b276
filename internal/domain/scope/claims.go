package scope

import "errors"

var ErrMissingIdentity = errors.New("identity claims missing from token")

// FromClaims builds an Identity from decoded JWT claims. The token is issued
// by our own auth service, so absent claims mean a malformed or foreign token.
func FromClaims(claims map[string]interface{}) (Identity, error) {
	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return Identity{}, ErrMissingIdentity
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return Identity{}, ErrMissingIdentity
	}

	id := Identity{EmployeeID: employeeID, Role: role}
	if locationID, ok := claims["location_id"].(string); ok && locationID != "" {
		id.LocationID = &locationID
	}

	return id, nil
}
