package postgres

import "database/sql"

// schema mirrors the SQLite schema with PostgreSQL types. Timestamps stay
// Unix integers so both backends serve identical domain values.
const schema = `
CREATE TABLE IF NOT EXISTS guests (
    id TEXT PRIMARY KEY,
    group_id TEXT NOT NULL,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    email TEXT,
    phone TEXT,
    age_type TEXT NOT NULL,
    guest_type TEXT NOT NULL,
    dietary_restrictions TEXT,
    plus_one_name TEXT,
    plus_one_attending BOOLEAN NOT NULL DEFAULT FALSE,
    arrival_date TEXT,
    departure_date TEXT,
    airport_code TEXT,
    flight_number TEXT,
    invitation_sent BOOLEAN NOT NULL DEFAULT FALSE,
    invitation_sent_date TEXT,
    rsvp_deadline TEXT,
    notes TEXT,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS vendors (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    category TEXT NOT NULL,
    contact_name TEXT,
    contact_email TEXT,
    contact_phone TEXT,
    pricing_model TEXT NOT NULL,
    base_cost DOUBLE PRECISION NOT NULL,
    payment_status TEXT NOT NULL DEFAULT 'unpaid',
    amount_paid DOUBLE PRECISION NOT NULL DEFAULT 0,
    notes TEXT,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS locations (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    address TEXT,
    city TEXT,
    country TEXT,
    description TEXT,
    map_url TEXT,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS events (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    date TEXT NOT NULL,
    start_time TEXT,
    end_time TEXT,
    location_id TEXT REFERENCES locations(id) ON DELETE SET NULL,
    attire TEXT,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS activities (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    description TEXT,
    date TEXT,
    start_time TEXT,
    end_time TEXT,
    location_id TEXT REFERENCES locations(id) ON DELETE SET NULL,
    cost_per_person DOUBLE PRECISION,
    host_subsidy DOUBLE PRECISION,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS rsvps (
    id TEXT PRIMARY KEY,
    guest_id TEXT NOT NULL REFERENCES guests(id) ON DELETE CASCADE,
    activity_id TEXT NOT NULL REFERENCES activities(id) ON DELETE CASCADE,
    status TEXT NOT NULL DEFAULT 'pending',
    guest_count INTEGER,
    notes TEXT,
    responded_at BIGINT,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL,
    UNIQUE (guest_id, activity_id)
);

CREATE TABLE IF NOT EXISTS accommodations (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    address TEXT,
    description TEXT,
    website_url TEXT,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS room_types (
    id TEXT PRIMARY KEY,
    accommodation_id TEXT NOT NULL REFERENCES accommodations(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    capacity INTEGER NOT NULL,
    total_rooms INTEGER NOT NULL,
    price_per_night DOUBLE PRECISION NOT NULL,
    host_subsidy_per_night DOUBLE PRECISION,
    created_at BIGINT NOT NULL,
    updated_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS room_assignments (
    id TEXT PRIMARY KEY,
    room_type_id TEXT NOT NULL REFERENCES room_types(id) ON DELETE CASCADE,
    guest_id TEXT NOT NULL REFERENCES guests(id) ON DELETE CASCADE,
    check_in TEXT NOT NULL,
    check_out TEXT NOT NULL,
    created_at BIGINT NOT NULL,
    UNIQUE (room_type_id, guest_id)
);

CREATE TABLE IF NOT EXISTS admin_users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_guests_group_id ON guests(group_id);
CREATE INDEX IF NOT EXISTS idx_vendors_category ON vendors(category);
CREATE INDEX IF NOT EXISTS idx_vendors_payment_status ON vendors(payment_status);
CREATE INDEX IF NOT EXISTS idx_rsvps_activity_id ON rsvps(activity_id);
CREATE INDEX IF NOT EXISTS idx_room_types_accommodation_id ON room_types(accommodation_id);
CREATE INDEX IF NOT EXISTS idx_room_assignments_room_type_id ON room_assignments(room_type_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
