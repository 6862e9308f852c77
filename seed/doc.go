// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed loads YAML fixtures into the database for demos and local
development.

# Fixture Format

	members:
	  - name: Jane Doe
	    seat: Mayor
	    active: true
	    committees: [Finance]
	meetings:
	  - date: 2025-03-06
	    title: Regular Council Meeting
	    items:
	      - title: Micro-unit housing project at 2206 Pearl Street
	        category: housing
	        tags: [zoning, housing]
	        votes:
	          - member: Jane Doe
	            outcome: YEA

# Loading

The server loads a fixture at startup when -seed (or SEED_FILE) is set:

	counts, err := seed.LoadFile(conn, "fixtures/boulder.yaml")

Loading is idempotent against natural keys - member name, meeting date,
and agenda title within a meeting - so restarting the server with the same
fixture inserts nothing new. Vote timestamps derive from the meeting date,
keeping recency ordering deterministic across loads.

Fixture votes must use the canonical outcomes (YEA, NAY, ABSTAIN, ABSENT);
alias mapping of scraper values is the ingest endpoint's job, not the
fixture's.
*/
package seed
