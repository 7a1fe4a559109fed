package store

const schema = `
CREATE TABLE IF NOT EXISTS media (
    id              TEXT PRIMARY KEY,
    file_path       TEXT NOT NULL,
    source_language TEXT NOT NULL,
    created_at      TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now'))
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_media_file_path ON media(file_path);

CREATE TABLE IF NOT EXISTS subtitle_assets (
    id              TEXT PRIMARY KEY,
    media_id        TEXT NOT NULL REFERENCES media(id) ON DELETE CASCADE,
    language        TEXT NOT NULL,
    kind            TEXT NOT NULL,
    source_asset_id TEXT,
    source_language TEXT,
    file_path       TEXT,
    created_at      TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now')),
    UNIQUE(media_id, language, kind)
);

CREATE TABLE IF NOT EXISTS subtitle_segments (
    asset_id        TEXT NOT NULL REFERENCES subtitle_assets(id) ON DELETE CASCADE,
    sequence_number INTEGER NOT NULL,
    start_ms        INTEGER NOT NULL,
    end_ms          INTEGER NOT NULL,
    text            TEXT NOT NULL,
    confidence      REAL NOT NULL DEFAULT 0,
    PRIMARY KEY(asset_id, sequence_number)
);

CREATE TABLE IF NOT EXISTS pipeline_stages (
    media_id     TEXT NOT NULL REFERENCES media(id) ON DELETE CASCADE,
    stage        TEXT NOT NULL,
    completed_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%SZ','now')),
    PRIMARY KEY(media_id, stage)
);
`
