package vcache

import "fmt"

// buildAdjacency derives the per-vertex scheduling records and the
// flattened vertex→triangle adjacency array from an index buffer.
//
// The adjacency array concatenates every vertex's triangle list: for
// vertex v, adj[verts[v].triStart : verts[v].triStart+verts[v].triCount]
// holds the ids of the triangles touching v. Built in two linear passes
// with a prefix sum in between; read-only afterwards.
//
// Every index is validated against numVertices before any allocation that
// depends on the counts, so a malformed buffer can never scatter out of
// bounds.
func buildAdjacency(indices []uint32, numVertices int) ([]vertexRec, []int32, error) {
	verts := make([]vertexRec, numVertices)

	for _, id := range indices {
		if int(id) >= numVertices {
			return nil, nil, fmt.Errorf("%w: id %d with %d vertices", ErrVertexOutOfRange, id, numVertices)
		}
		verts[id].triCount++
	}

	var offset int32
	for v := range verts {
		verts[v].triStart = offset
		verts[v].trisLeft = verts[v].triCount
		verts[v].cachePos = notCached
		offset += verts[v].triCount
	}

	adj := make([]int32, offset)
	fill := make([]int32, numVertices)
	for t := 0; t < len(indices)/3; t++ {
		for k := 0; k < 3; k++ {
			v := indices[t*3+k]
			adj[verts[v].triStart+fill[v]] = int32(t)
			fill[v]++
		}
	}

	return verts, adj, nil
}
