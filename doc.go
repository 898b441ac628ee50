// Package ldap provides a small wrapper around go-ldap/ldap for
// connect/bind/search against a directory server, plus normalization of
// raw search results into a flat, predictable structure.
//
// The wrapper holds one logical connection per client instance and models
// the session as Unconnected -> Connected -> Bound. Bind performs an
// implicit Connect when needed and attempts a StartTLS upgrade whose
// failure is recorded but never aborts the bind.
//
// Search results are flattened into []Entry, where each attribute value is
// a scalar, an ordered list, or a raw/decoded identifier pair for the
// binary objectGUID and objectSid attributes.
//
// # Basic Usage
//
//	client, err := ldap.New("ldap://ldap.example.com:389")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	if err := client.Bind("cn=admin,dc=example,dc=com", "password"); err != nil {
//		log.Printf("bind failed: %v", err)
//		return
//	}
//
//	entries, err := client.Search("(objectClass=user)", "ou=people,dc=example,dc=com")
//	if errors.Is(err, ldap.ErrNoResults) {
//		fmt.Println("no matching entries")
//		return
//	}
//	for _, e := range entries {
//		fmt.Println(e.Data["cn"].Str)
//	}
//
// # Error Handling
//
// The search path never returns a nil error together with an empty result:
// zero matches surface as ErrNoResults, a missing base DN as ErrBaseDNEmpty,
// and an unauthenticated session as ErrNotConnected or ErrNotBound. Callers
// that only care about a "no usable result" outcome can treat any non-nil
// error uniformly; callers that need the reason can use errors.Is.
package ldap
