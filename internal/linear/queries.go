package linear

// GraphQL queries and mutations. All dynamic values travel through
// variables; partial create/update payloads are Input maps passed as the
// $input variable so that unset fields never appear on the wire.

const issueFields = `
      id
      identifier
      title
      description
      url
      priority
      estimate
      dueDate
      state { id name type }
      team { id key name }
      assignee { id name displayName email }
      project { id name }
      cycle { id number name team { id key name } }
      projectMilestone { name }
      parent { identifier }
      labels { nodes { id name color } }
      createdAt
      updatedAt`

const (
	queryViewer = `query Viewer {
  viewer { id name displayName email }
}`

	queryUsers = `query Users($first: Int!, $after: String, $filter: UserFilter) {
  users(first: $first, after: $after, filter: $filter) {
    nodes { id name displayName email isMe }
    pageInfo { hasNextPage endCursor }
  }
}`

	queryUser = `query User($id: String!) {
  user(id: $id) { id name displayName email isMe }
}`

	queryTeams = `query Teams($first: Int!, $after: String, $filter: TeamFilter) {
  teams(first: $first, after: $after, filter: $filter) {
    nodes { id key name description }
    pageInfo { hasNextPage endCursor }
  }
}`

	queryTeam = `query Team($id: String!) {
  team(id: $id) {
    id
    key
    name
    description
    states { nodes { id name type } }
  }
}`

	queryWorkflowStates = `query WorkflowStates($filter: WorkflowStateFilter) {
  workflowStates(first: 50, filter: $filter) {
    nodes { id name type }
    pageInfo { hasNextPage endCursor }
  }
}`

	queryLabels = `query Labels($first: Int!, $after: String, $filter: IssueLabelFilter) {
  issueLabels(first: $first, after: $after, filter: $filter) {
    nodes { id name color description team { id key name } }
    pageInfo { hasNextPage endCursor }
  }
}`

	queryProjects = `query Projects($first: Int!, $after: String, $filter: ProjectFilter) {
  projects(first: $first, after: $after, filter: $filter) {
    nodes { id name url description state targetDate lead { id name displayName email } createdAt updatedAt }
    pageInfo { hasNextPage endCursor }
  }
}`

	queryProject = `query Project($id: String!) {
  project(id: $id) {
    id name url description state targetDate
    lead { id name displayName email }
    createdAt updatedAt
  }
}`

	queryProjectMilestones = `query ProjectMilestones($projectId: String!, $first: Int!, $after: String) {
  project(id: $projectId) {
    id
    projectMilestones(first: $first, after: $after) {
      nodes { id name description targetDate project { name } }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

	queryProjectMilestone = `query ProjectMilestone($id: String!) {
  projectMilestone(id: $id) { id name description targetDate project { name } }
}`

	queryCycles = `query Cycles($first: Int!, $after: String, $filter: CycleFilter) {
  cycles(first: $first, after: $after, filter: $filter) {
    nodes { id number name startsAt endsAt team { id key name } }
    pageInfo { hasNextPage endCursor }
  }
}`

	queryIssues = `query Issues($first: Int!, $after: String, $filter: IssueFilter) {
  issues(first: $first, after: $after, filter: $filter, orderBy: updatedAt) {
    nodes {` + issueFields + `
    }
    pageInfo { hasNextPage endCursor }
  }
}`

	queryIssue = `query Issue($id: String!) {
  issue(id: $id) {` + issueFields + `
  }
}`

	queryIssueComments = `query IssueComments($id: String!, $first: Int!, $after: String) {
  issue(id: $id) {
    id
    comments(first: $first, after: $after) {
      nodes { id body user { id name displayName email } createdAt updatedAt }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

	queryIssueAttachments = `query IssueAttachments($id: String!, $first: Int!, $after: String) {
  issue(id: $id) {
    id
    attachments(first: $first, after: $after) {
      nodes { id title subtitle url createdAt }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

	queryDocuments = `query Documents($first: Int!, $after: String) {
  documents(first: $first, after: $after) {
    nodes { id title url project { name } creator { id name displayName email } createdAt updatedAt }
    pageInfo { hasNextPage endCursor }
  }
}`

	queryProjectDocuments = `query ProjectDocuments($projectId: String!, $first: Int!, $after: String) {
  project(id: $projectId) {
    id
    documents(first: $first, after: $after) {
      nodes { id title url project { name } creator { id name displayName email } createdAt updatedAt }
      pageInfo { hasNextPage endCursor }
    }
  }
}`

	queryDocument = `query Document($id: String!) {
  document(id: $id) {
    id title content url
    project { name }
    creator { id name displayName email }
    createdAt updatedAt
  }
}`
)

const (
	mutationIssueCreate = `mutation IssueCreate($input: IssueCreateInput!) {
  issueCreate(input: $input) {
    success
    issue {` + issueFields + `
    }
  }
}`

	mutationIssueUpdate = `mutation IssueUpdate($id: String!, $input: IssueUpdateInput!) {
  issueUpdate(id: $id, input: $input) {
    success
    issue {` + issueFields + `
    }
  }
}`

	mutationIssueDelete = `mutation IssueDelete($id: String!) {
  issueDelete(id: $id) { success }
}`

	mutationCommentCreate = `mutation CommentCreate($input: CommentCreateInput!) {
  commentCreate(input: $input) {
    success
    comment { id body user { id name displayName email } createdAt updatedAt }
  }
}`

	mutationCommentUpdate = `mutation CommentUpdate($id: String!, $input: CommentUpdateInput!) {
  commentUpdate(id: $id, input: $input) {
    success
    comment { id body user { id name displayName email } createdAt updatedAt }
  }
}`

	mutationCommentDelete = `mutation CommentDelete($id: String!) {
  commentDelete(id: $id) { success }
}`

	mutationAttachmentCreate = `mutation AttachmentCreate($input: AttachmentCreateInput!) {
  attachmentCreate(input: $input) {
    success
    attachment { id title subtitle url createdAt }
  }
}`

	mutationAttachmentDelete = `mutation AttachmentDelete($id: String!) {
  attachmentDelete(id: $id) { success }
}`

	mutationProjectCreate = `mutation ProjectCreate($input: ProjectCreateInput!) {
  projectCreate(input: $input) {
    success
    project { id name url description state targetDate lead { id name displayName email } createdAt updatedAt }
  }
}`

	mutationProjectUpdate = `mutation ProjectUpdate($id: String!, $input: ProjectUpdateInput!) {
  projectUpdate(id: $id, input: $input) {
    success
    project { id name url description state targetDate lead { id name displayName email } createdAt updatedAt }
  }
}`

	mutationProjectDelete = `mutation ProjectDelete($id: String!) {
  projectDelete(id: $id) { success }
}`

	mutationMilestoneCreate = `mutation ProjectMilestoneCreate($input: ProjectMilestoneCreateInput!) {
  projectMilestoneCreate(input: $input) {
    success
    projectMilestone { id name description targetDate project { name } }
  }
}`

	mutationMilestoneUpdate = `mutation ProjectMilestoneUpdate($id: String!, $input: ProjectMilestoneUpdateInput!) {
  projectMilestoneUpdate(id: $id, input: $input) {
    success
    projectMilestone { id name description targetDate project { name } }
  }
}`

	mutationMilestoneDelete = `mutation ProjectMilestoneDelete($id: String!) {
  projectMilestoneDelete(id: $id) { success }
}`

	mutationLabelCreate = `mutation IssueLabelCreate($input: IssueLabelCreateInput!) {
  issueLabelCreate(input: $input) {
    success
    issueLabel { id name color description team { id key name } }
  }
}`

	mutationLabelUpdate = `mutation IssueLabelUpdate($id: String!, $input: IssueLabelUpdateInput!) {
  issueLabelUpdate(id: $id, input: $input) {
    success
    issueLabel { id name color description team { id key name } }
  }
}`

	mutationLabelDelete = `mutation IssueLabelDelete($id: String!) {
  issueLabelDelete(id: $id) { success }
}`

	mutationDocumentCreate = `mutation DocumentCreate($input: DocumentCreateInput!) {
  documentCreate(input: $input) {
    success
    document { id title content url project { name } creator { id name displayName email } createdAt updatedAt }
  }
}`

	mutationDocumentUpdate = `mutation DocumentUpdate($id: String!, $input: DocumentUpdateInput!) {
  documentUpdate(id: $id, input: $input) {
    success
    document { id title content url project { name } creator { id name displayName email } createdAt updatedAt }
  }
}`

	mutationDocumentDelete = `mutation DocumentDelete($id: String!) {
  documentDelete(id: $id) { success }
}`
)
