package client

// listingSchema describes GET /pokemon?offset=&limit=. next and previous are
// required but may be null.
const listingSchema = `{
  "type": "object",
  "required": ["count", "next", "previous", "results"],
  "properties": {
    "count":    {"type": "integer", "minimum": 0},
    "next":     {"type": ["string", "null"]},
    "previous": {"type": ["string", "null"]},
    "results": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "url"],
        "properties": {
          "name": {"type": "string"},
          "url":  {"type": "string"}
        }
      }
    }
  }
}`

// detailSchema describes GET /pokemon/{id or name}. sprites.front_default is the
// only field allowed to be null or absent.
const detailSchema = `{
  "type": "object",
  "required": ["id", "name", "height", "weight", "types", "sprites"],
  "properties": {
    "id":     {"type": "integer"},
    "name":   {"type": "string"},
    "height": {"type": "integer"},
    "weight": {"type": "integer"},
    "types": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type"],
        "properties": {
          "type": {
            "type": "object",
            "required": ["name"],
            "properties": {
              "name": {"type": "string"}
            }
          }
        }
      }
    },
    "sprites": {
      "type": "object",
      "properties": {
        "front_default": {"type": ["string", "null"]}
      }
    }
  }
}`
